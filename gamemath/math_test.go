package gamemath

import "testing"

func TestApproach(t *testing.T) {
	if got := Approach(0, 10, 3); got != 3 {
		t.Fatalf("Approach(0,10,3) = %f", got)
	}
	if got := Approach(9, 10, 3); got != 10 {
		t.Fatalf("Approach must not overshoot, got %f", got)
	}
	if got := Approach(10, 0, 4); got != 6 {
		t.Fatalf("Approach(10,0,4) = %f", got)
	}
	if got := Approach(5, 5, 1); got != 5 {
		t.Fatalf("Approach at target should stay, got %f", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5,0,3) = %f", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp(-1,0,3) = %f", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp(2,0,3) = %f", got)
	}
}

func TestSign(t *testing.T) {
	if Sign(-3) != -1 || Sign(3) != 1 || Sign(0) != 0 {
		t.Fatal("Sign mismatch")
	}
}

func TestDist(t *testing.T) {
	if got := Dist(0, 0, 3, 4); got != 5 {
		t.Fatalf("Dist(0,0,3,4) = %f", got)
	}
}
