package components

import "testing"

func TestScratchIsPerOwner(t *testing.T) {
	tl := TimelineData{}

	a := tl.ScratchFor("Blinking")
	a.A = 1.5

	b := tl.ScratchFor("SlowAbility")
	if b.A != 0 {
		t.Fatal("scratch leaked between owners")
	}

	if tl.ScratchFor("Blinking").A != 1.5 {
		t.Fatal("scratch not persistent for the same owner")
	}
}

func TestResetScratchClearsLatches(t *testing.T) {
	tl := TimelineData{}
	tl.ScratchFor("SlowAbility").B = 1

	tl.ResetScratch()
	if tl.ScratchFor("SlowAbility").B != 0 {
		t.Fatal("reset did not clear scratch")
	}
}

func TestTotalFramesNeverZero(t *testing.T) {
	anim := AnimationData{}
	if anim.TotalFrames() != 1 {
		t.Fatalf("zero grid total = %d, want 1", anim.TotalFrames())
	}
	anim.Cols, anim.Rows = 4, 2
	if anim.TotalFrames() != 8 {
		t.Fatalf("4x2 grid total = %d, want 8", anim.TotalFrames())
	}
}
