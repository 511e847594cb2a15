package argument

import (
	"github.com/go-dlt/dltcore/endian"
	"github.com/go-dlt/dltcore/errs"
)

// FixedPoint carries the quantization and offset that accompany a
// fixed-point argument's raw integer value. Quantization is always a
// 32-bit float; Offset is an int32 when the argument's numeric width is
// 32, or an int64 when the width is 64 — any other width is Malformed.
type FixedPoint struct {
	Quantization float32
	Offset       int64
}

// DecodeFixedPoint decodes the quantization/offset metadata for an argument
// of the given numeric width (32 or 64) from the head of data.
func DecodeFixedPoint(data []byte, width int, engine endian.EndianEngine) (FixedPoint, []byte, error) {
	switch width {
	case 32:
		if len(data) < 8 {
			return FixedPoint{}, nil, errs.NewIncomplete(8 - len(data))
		}

		quant := decodeFloat32(data[:4], engine)
		offset := int32(engine.Uint32(data[4:8]))

		return FixedPoint{Quantization: quant, Offset: int64(offset)}, data[8:], nil
	case 64:
		if len(data) < 12 {
			return FixedPoint{}, nil, errs.NewIncomplete(12 - len(data))
		}

		quant := decodeFloat32(data[:4], engine)
		offset := int64(engine.Uint64(data[4:12]))

		return FixedPoint{Quantization: quant, Offset: offset}, data[12:], nil
	default:
		return FixedPoint{}, nil, errs.ErrInvalidFixedPointWidth
	}
}

// Encode serializes fp as the quantization+offset metadata for the given
// numeric width (32 or 64).
func (fp FixedPoint) Encode(width int, engine endian.EndianEngine) ([]byte, error) {
	switch width {
	case 32:
		b := make([]byte, 8)
		copy(b[:4], encodeFloat32(fp.Quantization, engine))
		engine.PutUint32(b[4:8], uint32(int32(fp.Offset)))

		return b, nil
	case 64:
		b := make([]byte, 12)
		copy(b[:4], encodeFloat32(fp.Quantization, engine))
		engine.PutUint64(b[4:12], uint64(fp.Offset))

		return b, nil
	default:
		return nil, errs.ErrInvalidFixedPointWidth
	}
}
