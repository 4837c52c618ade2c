package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionNone)
	if !f.Empty() {
		t.Error("ActionNone should not be recorded")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("frame should hold only Left")
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestFrameOf(t *testing.T) {
	if f := FrameOf(ActionUp); !f.Has(ActionUp) {
		t.Error("FrameOf(Up) should hold Up")
	}
	if f := FrameOf(ActionNone); !f.Empty() {
		t.Error("FrameOf(None) should be empty")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should hold nothing")
	}
	zero.Set(ActionDown)
	if !zero.Has(ActionDown) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionUp, "Up"},
		{ActionRestart, "Restart"},
		{ActionDismiss, "Dismiss"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
