package drawing

import "testing"

func TestRectangleF_Edges(t *testing.T) {
	type tc struct {
		rect                     RectangleF
		left, top, right, bottom float64
	}

	tests := map[string]tc{
		"positive": {
			rect: NewRectangleF(1.5, 2.5, 3, 4),
			left: 1.5, top: 2.5, right: 4.5, bottom: 6.5,
		},
		"negative size": {
			rect: NewRectangleF(5, 5, -5, -5),
			left: 0, top: 0, right: 5, bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := tt.rect
			if r.Left() != tt.left || r.Top() != tt.top || r.Right() != tt.right || r.Bottom() != tt.bottom {
				t.Errorf("edges = %g,%g,%g,%g, want %g,%g,%g,%g",
					r.Left(), r.Top(), r.Right(), r.Bottom(),
					tt.left, tt.top, tt.right, tt.bottom)
			}
		})
	}
}

func TestRectangleF_Contains(t *testing.T) {
	r := NewRectangleF(0, 0, 10, 10)
	if !r.Contains(5, 5) {
		t.Error("Contains(5,5) = false")
	}
	if !r.Contains(0, 0) {
		t.Error("Contains(0,0) = false")
	}
	if r.Contains(10, 10) {
		t.Error("Contains(10,10) = true, Right/Bottom are exclusive")
	}
	if (RectangleF{}).Contains(0, 0) {
		t.Error("empty rect contains nothing")
	}
}

func TestRectangleF_IntersectUnion(t *testing.T) {
	a := NewRectangleF(0, 0, 10, 10)
	b := NewRectangleF(5, 5, 10, 10)

	if !a.Intersects(b) {
		t.Error("Intersects = false")
	}
	if got := IntersectF(a, b); got != NewRectangleF(5, 5, 5, 5) {
		t.Errorf("IntersectF = %v", got)
	}
	if got := UnionF(a, b); got != NewRectangleF(0, 0, 15, 15) {
		t.Errorf("UnionF = %v", got)
	}

	c := NewRectangleF(20, 20, 5, 5)
	if a.Intersects(c) {
		t.Error("disjoint rects intersect")
	}
	if got := IntersectF(a, c); got != (RectangleF{}) {
		t.Errorf("IntersectF disjoint = %v", got)
	}
}

func TestRectangleF_OffsetInflate(t *testing.T) {
	r := NewRectangleF(1, 1, 4, 4)
	r.Offset(2, 3)
	if r != NewRectangleF(3, 4, 4, 4) {
		t.Errorf("Offset = %v", r)
	}
	r.Inflate(1, 1)
	if r != NewRectangleF(2, 3, 6, 6) {
		t.Errorf("Inflate = %v", r)
	}
	if got := r.Offsetted(-2, -3); got != NewRectangleF(0, 0, 6, 6) {
		t.Errorf("Offsetted = %v", got)
	}
}

func TestRectangle_Conversions(t *testing.T) {
	type tc struct {
		rect     RectangleF
		round    Rectangle
		ceiling  Rectangle
		truncate Rectangle
	}

	tests := map[string]tc{
		"fractional": {
			rect:     NewRectangleF(1.4, 1.6, 2.5, 2.4),
			round:    NewRectangle(1, 2, 3, 2),
			ceiling:  NewRectangle(1, 1, 3, 3),
			truncate: NewRectangle(1, 1, 2, 2),
		},
		"integral": {
			rect:     NewRectangleF(1, 2, 3, 4),
			round:    NewRectangle(1, 2, 3, 4),
			ceiling:  NewRectangle(1, 2, 3, 4),
			truncate: NewRectangle(1, 2, 3, 4),
		},
		"negative location": {
			rect:     NewRectangleF(-1.5, -1.2, 3.1, 3.9),
			round:    NewRectangle(-2, -1, 3, 4),
			ceiling:  NewRectangle(-1, -1, 4, 4),
			truncate: NewRectangle(-1, -1, 3, 3),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Round(tt.rect); got != tt.round {
				t.Errorf("Round() = %v, want %v", got, tt.round)
			}
			if got := Ceiling(tt.rect); got != tt.ceiling {
				t.Errorf("Ceiling() = %v, want %v", got, tt.ceiling)
			}
			if got := Truncate(tt.rect); got != tt.truncate {
				t.Errorf("Truncate() = %v, want %v", got, tt.truncate)
			}
		})
	}
}

func TestRectangle_ToFloat(t *testing.T) {
	r := NewRectangle(1, 2, -3, 4)
	f := r.ToFloat()
	if f != NewRectangleF(1, 2, -3, 4) {
		t.Errorf("ToFloat() = %v", f)
	}
}
