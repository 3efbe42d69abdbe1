package drawing

import "testing"

func TestSize_Arithmetic(t *testing.T) {
	s := Sz(10, 20)
	u := Sz(4, 5)

	if got := s.Add(u); got != Sz(14, 25) {
		t.Errorf("Add() = %v", got)
	}
	if got := s.Sub(u); got != Sz(6, 15) {
		t.Errorf("Sub() = %v", got)
	}
	if got := s.Mul(2); got != Sz(20, 40) {
		t.Errorf("Mul() = %v", got)
	}
	if got := s.Min(u); got != Sz(4, 5) {
		t.Errorf("Min() = %v", got)
	}
	if got := s.Max(u); got != Sz(10, 20) {
		t.Errorf("Max() = %v", got)
	}
}

func TestSize_EmptyZero(t *testing.T) {
	if !Sz(0, 10).IsEmpty() {
		t.Error("zero width should be empty")
	}
	if Sz(1, 1).IsEmpty() {
		t.Error("non-empty size reported empty")
	}
	if !Sz(0, 0).IsZero() {
		t.Error("zero size should be zero")
	}
	if Sz(0, 1).IsZero() {
		t.Error("non-zero size reported zero")
	}
}

func TestSizeF_Ceiling(t *testing.T) {
	if got := SzF(3.2, 4.7).Ceiling(); got != Sz(4, 5) {
		t.Errorf("Ceiling() = %v", got)
	}
	if got := SzF(3, 4).Ceiling(); got != Sz(3, 4) {
		t.Errorf("Ceiling() = %v", got)
	}
}
