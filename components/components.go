// Package components defines the spatial ECS components: positions,
// orientations, kinematics, bounding boxes, and the host transform they are
// kept in sync with.
package components

import "strings"

// Field identifies one component in a Changes mask.
type Field uint16

const (
	FieldPosition Field = 1 << iota
	FieldRotation
	FieldDirection
	FieldTransform
	FieldVelocity
	FieldAcceleration
	FieldAngularVelocity
	FieldAngularAcceleration

	fieldCount = iota
)

var fieldNames = [fieldCount]string{
	"position", "rotation", "direction", "transform",
	"velocity", "acceleration", "angular_velocity", "angular_acceleration",
}

func (f Field) String() string {
	var names []string
	for i := 0; i < fieldCount; i++ {
		if f&(1<<i) != 0 {
			names = append(names, fieldNames[i])
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Changes records which components of an entity were written since the
// last reset. Writers call Mark; the sync systems read it.
type Changes struct {
	Fields Field // written this frame
	staged Field // Fields as of the last Stage call
}

// Mark records a write to f.
func (c *Changes) Mark(f Field) { c.Fields |= f }

// Has reports whether any field in f was written this frame.
func (c *Changes) Has(f Field) bool { return c.Fields&f != 0 }

// Stage freezes the current mask. A system that both reads and writes
// changes uses Staged so its own writes don't feed back into it.
func (c *Changes) Stage() { c.staged = c.Fields }

// Staged reports whether f was written before the last Stage call.
func (c *Changes) Staged(f Field) bool { return c.staged&f != 0 }

// Reset clears the mask at the end of a frame.
func (c *Changes) Reset() {
	c.Fields = 0
	c.staged = 0
}

// Time is the frame clock. The plugin advances it once per Update.
type Time struct {
	Delta   float32 // seconds since the previous frame
	Elapsed float64 // seconds since the first frame
	Frame   uint64
}

// Advance moves the clock forward by dt seconds.
func (t *Time) Advance(dt float32) {
	t.Delta = dt
	t.Elapsed += float64(dt)
	t.Frame++
}
