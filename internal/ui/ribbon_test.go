package ui

import "testing"

func TestRibbonReconcile(t *testing.T) {
	var r ribbon
	if r.present() {
		t.Fatal("zero ribbon should be absent")
	}

	r = r.reconcile(true)
	r = r.reconcile(true)
	if !r.present() || r.transitions != 1 {
		t.Fatalf("after two reconcile(true): present=%v transitions=%d, want true 1", r.present(), r.transitions)
	}

	r = r.reconcile(false)
	r = r.reconcile(false)
	if r.present() || r.transitions != 2 {
		t.Fatalf("after two reconcile(false): present=%v transitions=%d, want false 2", r.present(), r.transitions)
	}
	if r.width() != 0 {
		t.Fatalf("absent ribbon width = %d, want 0", r.width())
	}
}

func TestRibbonHit(t *testing.T) {
	r := ribbon{}.reconcile(true)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, ribbonIconRow, true},
		{ribbonWidth - 1, ribbonIconRow, true},
		{ribbonWidth, ribbonIconRow, false},
		{0, ribbonIconRow + 1, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := r.hit(tt.x, tt.y); got != tt.want {
			t.Errorf("hit(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if (ribbon{}).hit(0, ribbonIconRow) {
		t.Error("absent ribbon should never be hit")
	}
}
