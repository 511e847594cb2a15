package argument

import (
	"unicode/utf8"

	"github.com/go-dlt/dltcore/endian"
	"github.com/go-dlt/dltcore/errs"
	"github.com/go-dlt/dltcore/header"
)

// DecodeArgument decodes one verbose-payload Argument from the head of
// data, using engine for payload byte order. It returns the remaining
// bytes after the argument.
func DecodeArgument(data []byte, engine endian.EndianEngine) (Argument, []byte, error) {
	ti, rest, err := DecodeTypeInfo(data, engine)
	if err != nil {
		return Argument{}, nil, err
	}

	arg := Argument{TypeInfo: ti}

	if ti.HasVariableInfo {
		name, unit, next, err := decodeVariableInfo(rest, engine)
		if err != nil {
			return Argument{}, nil, err
		}
		arg.Name, arg.Unit, rest = name, unit, next
	}

	if ti.Kind.IsFixedPoint() {
		fp, next, err := DecodeFixedPoint(rest, ti.Width, engine)
		if err != nil {
			return Argument{}, nil, err
		}
		arg.FixedPoint, rest = fp, next
	}

	val, next, err := decodeValue(rest, ti, engine)
	if err != nil {
		return Argument{}, nil, err
	}
	arg.Value, rest = val, next

	return arg, rest, nil
}

func decodeVariableInfo(data []byte, engine endian.EndianEngine) (name, unit string, rest []byte, err error) {
	if len(data) < 4 {
		return "", "", nil, errs.NewIncomplete(4 - len(data))
	}

	nameSize := int(engine.Uint16(data[0:2]))
	unitSize := int(engine.Uint16(data[2:4]))
	data = data[4:]

	if len(data) < nameSize+unitSize {
		return "", "", nil, errs.NewIncomplete(nameSize + unitSize - len(data))
	}

	name, err = header.ReadIdentifier(data[:nameSize], nameSize)
	if err != nil {
		return "", "", nil, err
	}
	data = data[nameSize:]

	unit, err = header.ReadIdentifier(data[:unitSize], unitSize)
	if err != nil {
		return "", "", nil, err
	}
	data = data[unitSize:]

	return name, unit, data, nil
}

func decodeValue(data []byte, ti TypeInfo, engine endian.EndianEngine) (Value, []byte, error) {
	switch ti.Kind {
	case KindBool:
		if len(data) < 1 {
			return Value{}, nil, errs.NewIncomplete(1)
		}

		return Value{Bool: data[0] != 0}, data[1:], nil

	case KindSigned, KindSignedFixedPoint:
		return decodeSigned(data, ti.Width, engine)

	case KindUnsigned, KindUnsignedFixedPoint:
		return decodeUnsigned(data, ti.Width, engine)

	case KindFloat:
		return decodeFloatValue(data, ti.Width, engine)

	case KindString:
		raw, next, err := decodeLengthPrefixed(data, engine)
		if err != nil {
			return Value{}, nil, err
		}

		return Value{Str: sanitizeString(raw, ti.StringCoding)}, next, nil

	case KindRaw:
		raw, next, err := decodeLengthPrefixed(data, engine)
		if err != nil {
			return Value{}, nil, err
		}

		return Value{Raw: raw}, next, nil

	default:
		return Value{}, nil, errs.ErrInvalidTypeInfo
	}
}

func decodeLengthPrefixed(data []byte, engine endian.EndianEngine) ([]byte, []byte, error) {
	if len(data) < 2 {
		return nil, nil, errs.NewIncomplete(2 - len(data))
	}

	n := int(engine.Uint16(data[:2]))
	data = data[2:]

	if len(data) < n {
		return nil, nil, errs.NewIncomplete(n - len(data))
	}

	out := make([]byte, n)
	copy(out, data[:n])

	return out, data[n:], nil
}

func decodeSigned(data []byte, width int, engine endian.EndianEngine) (Value, []byte, error) {
	n := width / 8
	if n == 0 || len(data) < n {
		return Value{}, nil, errs.NewIncomplete(n - len(data))
	}

	switch width {
	case 8:
		return Value{Signed: int64(int8(data[0]))}, data[1:], nil
	case 16:
		return Value{Signed: int64(int16(engine.Uint16(data[:2])))}, data[2:], nil
	case 32:
		return Value{Signed: int64(int32(engine.Uint32(data[:4])))}, data[4:], nil
	case 64:
		return Value{Signed: int64(engine.Uint64(data[:8]))}, data[8:], nil
	case 128:
		raw := make([]byte, 16)
		copy(raw, data[:16])

		return Value{Raw: raw}, data[16:], nil
	default:
		return Value{}, nil, errs.ErrInvalidTypeInfo
	}
}

func decodeUnsigned(data []byte, width int, engine endian.EndianEngine) (Value, []byte, error) {
	n := width / 8
	if n == 0 || len(data) < n {
		return Value{}, nil, errs.NewIncomplete(n - len(data))
	}

	switch width {
	case 8:
		return Value{Unsigned: uint64(data[0])}, data[1:], nil
	case 16:
		return Value{Unsigned: uint64(engine.Uint16(data[:2]))}, data[2:], nil
	case 32:
		return Value{Unsigned: uint64(engine.Uint32(data[:4]))}, data[4:], nil
	case 64:
		return Value{Unsigned: engine.Uint64(data[:8])}, data[8:], nil
	case 128:
		raw := make([]byte, 16)
		copy(raw, data[:16])

		return Value{Raw: raw}, data[16:], nil
	default:
		return Value{}, nil, errs.ErrInvalidTypeInfo
	}
}

func decodeFloatValue(data []byte, width int, engine endian.EndianEngine) (Value, []byte, error) {
	switch width {
	case 32:
		if len(data) < 4 {
			return Value{}, nil, errs.NewIncomplete(4 - len(data))
		}

		return Value{Float: float64(decodeFloat32(data[:4], engine))}, data[4:], nil
	case 64:
		if len(data) < 8 {
			return Value{}, nil, errs.NewIncomplete(8 - len(data))
		}

		return Value{Float: decodeFloat64(data[:8], engine)}, data[8:], nil
	default:
		return Value{}, nil, errs.ErrInvalidTypeInfo
	}
}

// sanitizeString decodes raw bytes as the given coding, tolerating invalid
// trailing bytes by truncating at the last valid UTF-8 boundary rather than
// failing. ASCII is a subset of UTF-8, so the same tolerant decode applies
// to both codings.
func sanitizeString(raw []byte, _ StringCoding) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	for end := len(raw); end > 0; end-- {
		if utf8.Valid(raw[:end]) {
			return string(raw[:end])
		}
	}

	return ""
}

// Encode serializes arg into its wire-format bytes using engine for byte
// order.
func (arg Argument) Encode(engine endian.EndianEngine) ([]byte, error) {
	out := arg.TypeInfo.Encode(engine)

	if arg.TypeInfo.HasVariableInfo {
		nameBytes := []byte(arg.Name)
		unitBytes := []byte(arg.Unit)

		lenPrefix := make([]byte, 4)
		engine.PutUint16(lenPrefix[0:2], uint16(len(nameBytes)))
		engine.PutUint16(lenPrefix[2:4], uint16(len(unitBytes)))

		out = append(out, lenPrefix...)
		out = append(out, nameBytes...)
		out = append(out, unitBytes...)
	}

	if arg.TypeInfo.Kind.IsFixedPoint() {
		fpBytes, err := arg.FixedPoint.Encode(arg.TypeInfo.Width, engine)
		if err != nil {
			return nil, err
		}
		out = append(out, fpBytes...)
	}

	valBytes, err := arg.encodeValue(engine)
	if err != nil {
		return nil, err
	}

	return append(out, valBytes...), nil
}

func (arg Argument) encodeValue(engine endian.EndianEngine) ([]byte, error) {
	ti := arg.TypeInfo
	v := arg.Value

	switch ti.Kind {
	case KindBool:
		if v.Bool {
			return []byte{1}, nil
		}

		return []byte{0}, nil

	case KindSigned, KindSignedFixedPoint:
		return encodeSigned(v.Signed, ti.Width, v.Raw, engine)

	case KindUnsigned, KindUnsignedFixedPoint:
		return encodeUnsigned(v.Unsigned, ti.Width, v.Raw, engine)

	case KindFloat:
		switch ti.Width {
		case 32:
			return encodeFloat32(float32(v.Float), engine), nil
		case 64:
			return encodeFloat64(v.Float, engine), nil
		default:
			return nil, errs.ErrInvalidTypeInfo
		}

	case KindString:
		return encodeLengthPrefixed([]byte(v.Str), engine), nil

	case KindRaw:
		return encodeLengthPrefixed(v.Raw, engine), nil

	default:
		return nil, errs.ErrInvalidTypeInfo
	}
}

func encodeLengthPrefixed(data []byte, engine endian.EndianEngine) []byte {
	out := make([]byte, 2+len(data))
	engine.PutUint16(out[:2], uint16(len(data)))
	copy(out[2:], data)

	return out
}

func encodeSigned(v int64, width int, raw []byte, engine endian.EndianEngine) ([]byte, error) {
	switch width {
	case 8:
		return []byte{byte(int8(v))}, nil
	case 16:
		b := make([]byte, 2)
		engine.PutUint16(b, uint16(int16(v)))

		return b, nil
	case 32:
		b := make([]byte, 4)
		engine.PutUint32(b, uint32(int32(v)))

		return b, nil
	case 64:
		b := make([]byte, 8)
		engine.PutUint64(b, uint64(v))

		return b, nil
	case 128:
		b := make([]byte, 16)
		copy(b, raw)

		return b, nil
	default:
		return nil, errs.ErrInvalidTypeInfo
	}
}

func encodeUnsigned(v uint64, width int, raw []byte, engine endian.EndianEngine) ([]byte, error) {
	switch width {
	case 8:
		return []byte{byte(v)}, nil
	case 16:
		b := make([]byte, 2)
		engine.PutUint16(b, uint16(v))

		return b, nil
	case 32:
		b := make([]byte, 4)
		engine.PutUint32(b, uint32(v))

		return b, nil
	case 64:
		b := make([]byte, 8)
		engine.PutUint64(b, v)

		return b, nil
	case 128:
		b := make([]byte, 16)
		copy(b, raw)

		return b, nil
	default:
		return nil, errs.ErrInvalidTypeInfo
	}
}
