package core

import "testing"

func TestInputFrameOrderAndRepeat(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionRotate)

	if len(f.Actions) != 3 {
		t.Fatalf("expected 3 queued actions, got %d", len(f.Actions))
	}
	if f.Actions[0] != ActionLeft || f.Actions[2] != ActionRotate {
		t.Errorf("actions out of order: %v", f.Actions)
	}
	if !f.Has(ActionRotate) || f.Has(ActionDown) {
		t.Error("Has() reported wrong membership")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionDown) {
		t.Error("Clear() should drop all actions")
	}
	if !clone.Has(ActionDown) {
		t.Error("Clone() should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotate.String() != "Rotate" {
		t.Errorf("ActionRotate.String() = %q", ActionRotate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
