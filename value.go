package ring

import "strconv"

/*

Value is a present-or-absent payload stored under a key: a real stored
value can legitimately be -1, so presence needs its own bit rather than
an overloaded sentinel.
*/
type Value struct {
	v  int64
	ok bool
}

// None is the absent value.
var None = Value{}

// Some wraps a present value.
func Some(v int64) Value {
	return Value{v: v, ok: true}
}

// Get returns the payload and whether it is present.
func (val Value) Get() (int64, bool) {
	return val.v, val.ok
}

// IsSome reports whether the value is present.
func (val Value) IsSome() bool {
	return val.ok
}

func (val Value) String() string {
	if !val.ok {
		return "None"
	}
	return strconv.FormatInt(val.v, 10)
}
