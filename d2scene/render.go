package d2scene

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"cdr.dev/slog"

	"oss.terrastruct.com/d2paint/d2style"
	"oss.terrastruct.com/d2paint/lib/geo"
	"oss.terrastruct.com/d2paint/lib/log"
	"oss.terrastruct.com/d2paint/lib/svg"
)

type RenderOpts struct {
	// ViewMode overrides the scene's view mode when set.
	ViewMode *d2style.ViewMode
}

type Fragments struct {
	Defs   string          `json:"defs"`
	Shapes []ShapeFragment `json:"shapes"`
}

type ShapeFragment struct {
	ID         string `json:"id"`
	Attributes string `json:"attributes"`
}

func viewMode(s *Scene, opts *RenderOpts) d2style.ViewMode {
	if opts != nil && opts.ViewMode != nil {
		return *opts.ViewMode
	}
	return s.ViewMode
}

// RenderFragments renders every shape's style in order into one defs buffer.
// Gradient ids are not deduplicated; a reused id is only logged.
func RenderFragments(ctx context.Context, s *Scene, opts *RenderOpts) (*Fragments, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mode := viewMode(s, opts)
	ctx = log.Named(ctx, "d2scene")

	defs := &strings.Builder{}
	gradientOwners := make(map[uint64]string)
	out := &Fragments{Shapes: make([]ShapeFragment, 0, len(s.Shapes))}
	for _, sh := range s.Shapes {
		tb := sh.DocumentBounds()
		if g, ok := sh.Style.Fill().Gradient(); ok && mode != d2style.ViewModeOutline {
			if owner, ok := gradientOwners[g.ID]; ok {
				log.Warn(ctx, "gradient id reused, both shapes will reference the first def",
					slog.F("gradient", g.ID), slog.F("shape", sh.ID), slog.F("first", owner))
			} else {
				gradientOwners[g.ID] = sh.ID
			}
			if sh.Bounds.IsDegenerate() || tb.IsDegenerate() {
				log.Warn(ctx, "gradient fill on zero-area bounds",
					slog.F("shape", sh.ID), slog.F("bounds", sh.Bounds.ToString()), slog.F("transformed_bounds", tb.ToString()))
			}
		}

		attrs := sh.Style.Render(mode, defs, sh.Transform, sh.Bounds, tb)
		out.Shapes = append(out.Shapes, ShapeFragment{ID: sh.ID, Attributes: attrs})
		log.Debug(ctx, "rendered shape", slog.F("shape", sh.ID), slog.F("view_mode", mode.String()))
	}
	out.Defs = defs.String()
	return out, nil
}

// Render writes the scene as a standalone SVG document.
func Render(ctx context.Context, s *Scene, opts *RenderOpts) ([]byte, error) {
	frags, err := RenderFragments(ctx, s, opts)
	if err != nil {
		return nil, err
	}

	b := s.Bounds()
	buf := &bytes.Buffer{}
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		svg.Float(b.Width()), svg.Float(b.Height()),
		svg.Float(b.Min().X), svg.Float(b.Min().Y), svg.Float(b.Width()), svg.Float(b.Height()),
	)
	if frags.Defs != "" {
		fmt.Fprintf(buf, `<defs>%s</defs>`, frags.Defs)
	}
	for i, sh := range s.Shapes {
		fmt.Fprintf(buf, `<path id="%s" d="%s"%s%s/>`,
			svg.EscapeText(sh.ID), svg.EscapeText(sh.Path), transformAttr(sh.Transform), frags.Shapes[i].Attributes)
	}
	buf.WriteString(`</svg>`)
	return buf.Bytes(), nil
}

func transformAttr(m geo.Affine) string {
	if m.IsIdentity() {
		return ""
	}
	return fmt.Sprintf(` transform="matrix(%s)"`, svg.Matrix(m.ColsArray()))
}
