package argument

import (
	"math"

	"github.com/go-dlt/dltcore/endian"
)

func decodeFloat32(data []byte, engine endian.EndianEngine) float32 {
	return math.Float32frombits(engine.Uint32(data))
}

func encodeFloat32(v float32, engine endian.EndianEngine) []byte {
	b := make([]byte, 4)
	engine.PutUint32(b, math.Float32bits(v))

	return b
}

func decodeFloat64(data []byte, engine endian.EndianEngine) float64 {
	return math.Float64frombits(engine.Uint64(data))
}

func encodeFloat64(v float64, engine endian.EndianEngine) []byte {
	b := make([]byte, 8)
	engine.PutUint64(b, math.Float64bits(v))

	return b
}

// Value holds the decoded scalar or byte/string payload for an Argument.
// Only the field that corresponds to the Argument's TypeInfo.Kind is
// meaningful; the rest are left at their zero value. 128-bit signed and
// unsigned integers are the exception: their 16 raw bytes are in Raw.
type Value struct {
	Bool     bool
	Signed   int64
	Unsigned uint64
	Float    float64
	Str      string
	Raw      []byte
}

// Argument is one decoded verbose-payload argument: its type descriptor,
// optional name/unit (present iff TypeInfo.HasVariableInfo), optional
// fixed-point metadata (present iff TypeInfo.Kind.IsFixedPoint), and value.
type Argument struct {
	TypeInfo   TypeInfo
	Name       string
	Unit       string
	FixedPoint FixedPoint
	Value      Value
}
