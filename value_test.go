package ring_test

import (
	"testing"

	"github.com/fogfish/chordring"
	"github.com/fogfish/it"
)

func TestValueNone(t *testing.T) {
	it.Ok(t).IfTrue(!ring.None.IsSome())
	it.Ok(t).If(ring.None.String()).Equal("None")
}

func TestValueSome(t *testing.T) {
	v := ring.Some(42)
	got, ok := v.Get()

	it.Ok(t).IfTrue(ok)
	it.Ok(t).If(got).Equal(int64(42))
	it.Ok(t).If(v.String()).Equal("42")
}
