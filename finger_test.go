package ring_test

import (
	"testing"

	"github.com/fogfish/chordring"
	"github.com/fogfish/it"
)

func TestFingerOutOfRangeIsClamped(t *testing.T) {
	n := ring.New(0, ring.WithM8())
	n.Join(nil)

	it.Ok(t).IfTrue(n.Finger(0) == nil)
	it.Ok(t).IfTrue(n.Finger(9) == nil)
}

func TestSingleNodeFingersAllSelf(t *testing.T) {
	// single-node ring, every finger resolves to self.
	n := ring.New(42, ring.WithM8())
	n.Join(nil)
	n.RefreshFingers()

	for i := uint(1); i <= n.M(); i++ {
		it.Ok(t).If(n.Finger(i).ID()).Equal(n.ID())
	}
}
