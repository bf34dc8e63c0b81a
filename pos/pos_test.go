package pos

import "testing"

func TestPositionString(t *testing.T) {
	p := Position{Row: 3, Col: 7}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPositionIsZero(t *testing.T) {
	if !(Position{}).IsZero() {
		t.Errorf("zero value should report IsZero")
	}
	if (Position{Row: 1, Col: 1}).IsZero() {
		t.Errorf("(1,1) should not report IsZero")
	}
}
