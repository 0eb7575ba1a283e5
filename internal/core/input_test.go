package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotate)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	got := f.Actions()
	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionRotate) {
		t.Error("Has(Rotate) should be true")
	}
	if f.Has(ActionDrop) {
		t.Error("Has(Drop) should be false")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)

	clone := f.Clone()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if !clone.Has(ActionDown) {
		t.Error("Clone should keep its actions after the original is cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionDrop.String() != "Drop" {
		t.Errorf("ActionDrop.String() = %q", ActionDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
