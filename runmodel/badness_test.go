package runmodel

import "testing"

func TestComputeBadnessTooTightWithoutShrink(t *testing.T) {
	b := ComputeBadness(120, 100, 0, 0)
	if b.State != TooTight {
		t.Fatalf("ComputeBadness(120,100,0,0).State = %v, want TooTight", b.State)
	}
}

func TestComputeBadnessFiniteTightRatio(t *testing.T) {
	b := ComputeBadness(120, 100, 0, 30)
	if b.State != Finite {
		t.Fatalf("ComputeBadness(120,100,0,30).State = %v, want Finite", b.State)
	}
	if !b.Tight {
		t.Fatalf("expected Tight=true for an overfull line")
	}
	want := int64(66 * 66 * 66)
	if b.Magnitude != want {
		t.Fatalf("Magnitude = %d, want %d", b.Magnitude, want)
	}
}

func TestComputeBadnessExactFit(t *testing.T) {
	b := ComputeBadness(100, 100, 10, 10)
	if b.State != Finite || b.Magnitude != 0 {
		t.Fatalf("exact fit should be Finite/0, got %+v", b)
	}
}

func TestComputeBadnessNotStretchable(t *testing.T) {
	b := ComputeBadness(80, 100, 0, 0)
	if b.State != NotStretchable {
		t.Fatalf("State = %v, want NotStretchable", b.State)
	}
}

func TestComputeBadnessQuiteLoose(t *testing.T) {
	b := ComputeBadness(0, 100000, 1, 0)
	if b.State != QuiteLoose {
		t.Fatalf("State = %v, want QuiteLoose", b.State)
	}
}

func TestLessOrdersLevelsBeforeScore(t *testing.T) {
	prohibited := BadnessAndPenalty{Badness: Badness{State: Finite}, Penalty: [2]Penalty{ProhibitBreak, 0}}
	fine := BadnessAndPenalty{Badness: Badness{State: Finite, Magnitude: 1_000_000}, Penalty: [2]Penalty{0, 0}}
	if !Less(fine, prohibited, 0) {
		t.Fatalf("a finite-but-large-badness candidate must beat a prohibited one")
	}
	if Less(prohibited, fine, 0) {
		t.Fatalf("a prohibited candidate must never beat a finite one")
	}
}

func TestLessComparesFiniteScore(t *testing.T) {
	better := BadnessAndPenalty{Badness: Badness{State: Finite, Magnitude: 10}}
	worse := BadnessAndPenalty{Badness: Badness{State: Finite, Magnitude: 20}}
	if !Less(better, worse, 0) {
		t.Fatalf("lower magnitude should be less (better)")
	}
}

func TestIsMandatoryAndProhibited(t *testing.T) {
	bp := BadnessAndPenalty{Penalty: [2]Penalty{ForceBreak, ProhibitBreak}}
	if !bp.IsMandatory(0) {
		t.Fatalf("channel 0 should be mandatory")
	}
	if !bp.IsProhibited(1) {
		t.Fatalf("channel 1 should be prohibited")
	}
}
