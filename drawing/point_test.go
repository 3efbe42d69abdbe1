package drawing

import "testing"

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(10, 20)
	q := Pt(5, 15)

	if got := p.Add(q); got != Pt(15, 35) {
		t.Errorf("Add() = %v", got)
	}
	if got := p.Sub(q); got != Pt(5, 5) {
		t.Errorf("Sub() = %v", got)
	}
	if got := p.AddSize(Sz(1, 2)); got != Pt(11, 22) {
		t.Errorf("AddSize() = %v", got)
	}
	if got := p.Mul(3); got != Pt(30, 60) {
		t.Errorf("Mul() = %v", got)
	}
	if got := p.Min(q); got != Pt(5, 15) {
		t.Errorf("Min() = %v", got)
	}
	if got := p.Max(q); got != Pt(10, 20) {
		t.Errorf("Max() = %v", got)
	}
}

func TestPoint_In(t *testing.T) {
	r := NewRectangle(0, 0, 50, 50)
	if !Pt(10, 20).In(r) {
		t.Error("point should be inside rect")
	}
	if Pt(100, 100).In(r) {
		t.Error("point should be outside rect")
	}
	if Pt(50, 50).In(r) {
		t.Error("exclusive corner should be outside rect")
	}
}

func TestPointF_Conversions(t *testing.T) {
	if got := PtF(1.5, -1.5).Round(); got != Pt(2, -2) {
		t.Errorf("Round() = %v", got)
	}
	if got := PtF(1.9, -1.9).Truncate(); got != Pt(1, -1) {
		t.Errorf("Truncate() = %v", got)
	}
	if got := Pt(3, 4).ToFloat(); got != PtF(3, 4) {
		t.Errorf("ToFloat() = %v", got)
	}
}

func TestPointF_Lerp(t *testing.T) {
	p := PtF(0, 0)
	q := PtF(10, 20)
	if got := p.Lerp(q, 0.5); got != PtF(5, 10) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v", got)
	}
}

func TestPointF_Distance(t *testing.T) {
	if got := PtF(0, 0).Distance(PtF(3, 4)); got != 5 {
		t.Errorf("Distance() = %g, want 5", got)
	}
}
