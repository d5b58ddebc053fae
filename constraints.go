package mvector

// Signed is the set of signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integral element types. Modulo is restricted to it.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating point element types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of arithmetic element types accepted by the operators.
type Number interface {
	Integer | Float
}
