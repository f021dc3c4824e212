// Package coord defines the scalar types usable as one axis of a 2D position.
//
// A coordinate is closed under arithmetic with itself, ordered, bounded, and
// convertible to and from float32, the interchange format shared with the host
// transform. Wrapper types get their method set from cmd/coordgen.
package coord

import (
	"errors"
	"fmt"
)

//go:generate go run ../cmd/coordgen -type F32 -base float32 -min -math.MaxFloat32 -max math.MaxFloat32 -out f32_generated.go
//go:generate go run ../cmd/coordgen -type F64 -base float64 -min -math.MaxFloat64 -max math.MaxFloat64 -out f64_generated.go

// Coordinate is the constraint satisfied by every coordinate type C.
//
// Zero, Min, Max and Scale ignore their receiver; call them on the zero value.
// Scale is the factor applied to Float32 when writing into the host transform
// and divided out when reading back.
type Coordinate[C any] interface {
	comparable

	Add(C) C
	Sub(C) C
	Mul(C) C
	Div(C) C
	Rem(C) C
	Less(C) bool

	Zero() C
	Min() C
	Max() C
	Scale() float32

	Float32() float32
	FromFloat32(float32) (C, error)
}

var (
	// ErrOutOfRange is returned when a float32 has no representation in a bounded coordinate type.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrBounds reports a coordinate type whose Min is not strictly below its Max.
	ErrBounds = errors.New("coordinate bounds collapsed")
)

// ConversionError describes a failed float32 to coordinate conversion.
type ConversionError struct {
	Value    float32
	Min, Max float32
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: %g not in [%g, %g]", ErrOutOfRange, e.Value, e.Min, e.Max)
}

func (e *ConversionError) Unwrap() error { return ErrOutOfRange }

// FromFloat32 converts f into C.
func FromFloat32[C Coordinate[C]](f float32) (C, error) {
	var zero C
	return zero.FromFloat32(f)
}

// Bounds returns the smallest and largest values of C.
func Bounds[C Coordinate[C]]() (C, C) {
	var zero C
	return zero.Min(), zero.Max()
}

// AssertBoundsOkay checks that Min < Max both natively and after conversion
// to float32. A scale that collapses the range fails here.
func AssertBoundsOkay[C Coordinate[C]]() error {
	lo, hi := Bounds[C]()
	if !lo.Less(hi) {
		return fmt.Errorf("%w: min %v, max %v", ErrBounds, lo, hi)
	}
	if flo, fhi := lo.Float32(), hi.Float32(); !(flo < fhi) {
		return fmt.Errorf("%w: float min %g, float max %g", ErrBounds, flo, fhi)
	}
	return nil
}

// RoundTripFloatError converts f into C and back, returning final - initial.
func RoundTripFloatError[C Coordinate[C]](f float32) (float32, error) {
	c, err := FromFloat32[C](f)
	if err != nil {
		return 0, err
	}
	return c.Float32() - f, nil
}

// RoundTripCoordinateError converts c to float32 and back, returning final - initial.
// Discrete coordinate types must report zero across their whole range.
func RoundTripCoordinateError[C Coordinate[C]](c C) (C, error) {
	back, err := FromFloat32[C](c.Float32())
	if err != nil {
		return c.Zero(), err
	}
	return back.Sub(c), nil
}

// Clamp limits v to [lo, hi].
func Clamp[C Coordinate[C]](v, lo, hi C) C {
	if v.Less(lo) {
		return lo
	}
	if hi.Less(v) {
		return hi
	}
	return v
}

// MinOf returns the smaller of a and b.
func MinOf[C Coordinate[C]](a, b C) C {
	if b.Less(a) {
		return b
	}
	return a
}

// MaxOf returns the larger of a and b.
func MaxOf[C Coordinate[C]](a, b C) C {
	if a.Less(b) {
		return b
	}
	return a
}
