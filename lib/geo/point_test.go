package geo

import (
	"math"
	"testing"
)

func TestPointDistanceTo(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(3, 4)

	if d := p1.DistanceTo(p2); d != 5 {
		t.Fatalf("Expected 5 and got %v", d)
	}
	if d := p2.DistanceTo(p1); d != 5 {
		t.Fatalf("Expected distance to be symmetric, got %v", d)
	}
}

func TestPointDistanceToNaN(t *testing.T) {
	p1 := NewPoint(math.NaN(), 0)
	p2 := NewPoint(1, 0)

	if d := p1.DistanceTo(p2); !math.IsNaN(d) {
		t.Fatalf("Expected NaN to propagate, got %v", d)
	}
}

func TestPointSub(t *testing.T) {
	p := NewPoint(1.5, 5.5).Sub(NewPoint(0.5, 2))
	if !p.Equals(NewPoint(1, 3.5)) {
		t.Fatalf("Expected (1, 3.5), got %s", p.ToString())
	}
}

func TestBox(t *testing.T) {
	b := NewBox(NewPoint(10, 20), 30, 40)
	if !b.Max().Equals(NewPoint(40, 60)) {
		t.Fatalf("Expected max corner (40, 60), got %s", b.Max().ToString())
	}
	if !b.Center().Equals(NewPoint(25, 40)) {
		t.Fatalf("Expected center (25, 40), got %s", b.Center().ToString())
	}
	if b.IsDegenerate() {
		t.Fatal("Expected box to have area")
	}
	if !NewBox(NewPoint(1, 1), 0, 5).IsDegenerate() {
		t.Fatal("Expected zero width box to be degenerate")
	}

	m := b.UnitTransform()
	if p := m.TransformPoint(NewPoint(1, 1)); !p.Equals(b.Max()) {
		t.Fatalf("Expected unit corner to map to max corner, got %s", p.ToString())
	}
	if p := m.TransformPoint(NewPoint(0, 0)); !p.Equals(b.Min()) {
		t.Fatalf("Expected origin to map to min corner, got %s", p.ToString())
	}
}

func TestBoxTransform(t *testing.T) {
	b := NewBox(NewPoint(0, 0), 10, 20)

	moved := b.Transform(Translate(5, -5))
	if !moved.Min().Equals(NewPoint(5, -5)) || !moved.Max().Equals(NewPoint(15, 15)) {
		t.Fatalf("Expected translated box, got %s", moved.ToString())
	}

	flipped := b.Transform(Scale(-1, 2))
	if !flipped.Min().Equals(NewPoint(-10, 0)) || !flipped.Max().Equals(NewPoint(0, 40)) {
		t.Fatalf("Expected corners to be re-sorted after a flip, got %s", flipped.ToString())
	}

	u := NewBox(NewPoint(0, 0), 1, 1).Union(NewBox(NewPoint(-2, 3), 1, 1))
	if !u.Min().Equals(NewPoint(-2, 0)) || !u.Max().Equals(NewPoint(1, 4)) {
		t.Fatalf("Expected union to cover both boxes, got %s", u.ToString())
	}
}
