package dlen

import "testing"

func TestKindDiscriminationIsExclusive(t *testing.T) {
	cases := []Length{Px(10), Px(-3), Percent(0.5), Rel(1.0), Auto}
	for _, l := range cases {
		n := 0
		if l.IsAbs() {
			n++
		}
		if l.IsPercent() {
			n++
		}
		if l.IsRelative() {
			n++
		}
		if l.IsAuto() {
			n++
		}
		if n != 1 {
			t.Fatalf("Length %v matched %d of {abs,percent,relative,auto}, want exactly 1", l, n)
		}
	}
}

func TestPxRoundtrip(t *testing.T) {
	for _, px := range []int{0, 1, -1, 100000, -100000} {
		l := Px(px)
		if got := l.Px(); got != px {
			t.Fatalf("Px(%d).Px() = %d", px, got)
		}
	}
}

func TestPercentResolve(t *testing.T) {
	l := Percent(0.5)
	got := l.Resolve(200)
	if !got.IsAbs() || got.Px() != 100 {
		t.Fatalf("Percent(0.5).Resolve(200) = %v, want Px(100)", got)
	}
}

func TestResolvePassesThroughAbsoluteAndAuto(t *testing.T) {
	if got := Px(5).Resolve(1000); got != Px(5) {
		t.Fatalf("Resolve on absolute changed value: %v", got)
	}
	if got := Auto.Resolve(1000); !got.IsAuto() {
		t.Fatalf("Resolve on Auto should pass through, got %v", got)
	}
}

func TestAccumulatorDistributesWithoutDrift(t *testing.T) {
	// Ten spaces, each stretch = 1/3; total diff distributed over base=10
	// should sum to round(10 * 10/3) = 33, not 10*round(10/3)=10*3=30.
	var acc Accumulator
	share := Rel(1.0 / 3.0)
	sum := 0
	for i := 0; i < 10; i++ {
		sum += acc.Mul(10, share)
	}
	want := MulPerLengthRounded(10, Rel(10.0/3.0))
	if sum != want {
		t.Fatalf("accumulated sum=%d want=%d (naive per-call rounding would give a different total)", sum, want)
	}
}
