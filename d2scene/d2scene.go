// Package d2scene renders a list of styled paths into an SVG document.
//
// It plays the part of the document that owns the shapes: it hands each shape's
// PathStyle the view mode, a single shared defs buffer and the shape's bounds,
// and assembles the results.
package d2scene

import (
	"encoding/json"
	"fmt"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/d2paint/d2style"
	"oss.terrastruct.com/d2paint/lib/geo"
)

type Scene struct {
	// Width and Height size the document. When zero, the union of the shapes'
	// transformed bounds is used.
	Width    float64          `json:"width,omitempty"`
	Height   float64          `json:"height,omitempty"`
	ViewMode d2style.ViewMode `json:"view_mode"`
	Shapes   []Shape          `json:"shapes"`
}

type Shape struct {
	ID string `json:"id"`
	// Path is SVG path data in the shape's local space.
	Path string `json:"path"`
	// Transform maps local space to document space.
	Transform geo.Affine `json:"transform"`
	// Bounds is the local bounding box of Path.
	Bounds geo.Box `json:"bounds"`
	// TransformedBounds is Bounds in document space. It defaults to the box
	// around Bounds mapped through Transform.
	TransformedBounds *geo.Box          `json:"transformed_bounds,omitempty"`
	Style             d2style.PathStyle `json:"style"`
}

// DocumentBounds returns TransformedBounds or its default.
func (s Shape) DocumentBounds() geo.Box {
	if s.TransformedBounds != nil {
		return *s.TransformedBounds
	}
	return s.Bounds.Transform(s.Transform)
}

// UnmarshalJSON defaults a missing transform to the identity.
func (s *Shape) UnmarshalJSON(b []byte) error {
	type shape Shape
	out := shape{Transform: geo.Identity()}
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*s = Shape(out)
	return nil
}

func Parse(b []byte) (_ *Scene, err error) {
	defer xdefer.Errorf(&err, "failed to parse scene")

	var s Scene
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("negative document size %vx%v", s.Width, s.Height)
	}
	ids := make(map[string]int, len(s.Shapes))
	for i, sh := range s.Shapes {
		if sh.ID == "" {
			return fmt.Errorf("shape %d: missing id", i)
		}
		if j, ok := ids[sh.ID]; ok {
			return fmt.Errorf("shape %d: id %q already used by shape %d", i, sh.ID, j)
		}
		ids[sh.ID] = i
		if sh.Path == "" {
			return fmt.Errorf("shape %q: missing path data", sh.ID)
		}
	}
	return nil
}

// Bounds is the document box: the configured size or the union of all shapes.
func (s *Scene) Bounds() geo.Box {
	if s.Width > 0 && s.Height > 0 {
		return geo.NewBox(geo.NewPoint(0, 0), s.Width, s.Height)
	}
	if len(s.Shapes) == 0 {
		return geo.Box{}
	}
	b := s.Shapes[0].DocumentBounds()
	for _, sh := range s.Shapes[1:] {
		b = b.Union(sh.DocumentBounds())
	}
	return b
}
