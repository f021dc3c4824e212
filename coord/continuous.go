package coord

// F32 is a continuous coordinate backed by float32. It converts to the
// interchange format without loss.
type F32 float32

// F64 is a continuous coordinate backed by float64. Conversion to float32
// rounds to the nearest representable value.
type F64 float64
