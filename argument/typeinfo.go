package argument

import (
	"github.com/go-dlt/dltcore/endian"
	"github.com/go-dlt/dltcore/errs"
)

// Kind discriminates the value carried by an Argument.
type Kind uint8

const (
	KindBool Kind = iota
	KindSigned
	KindUnsigned
	KindFloat
	KindString
	KindRaw
	KindSignedFixedPoint
	KindUnsignedFixedPoint
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRaw:
		return "raw"
	case KindSignedFixedPoint:
		return "signed_fixed_point"
	case KindUnsignedFixedPoint:
		return "unsigned_fixed_point"
	default:
		return "unknown"
	}
}

// IsFixedPoint reports whether k carries fixed-point quantization metadata.
func (k Kind) IsFixedPoint() bool {
	return k == KindSignedFixedPoint || k == KindUnsignedFixedPoint
}

// StringCoding identifies the character encoding of a String argument.
type StringCoding uint8

const (
	CodingASCII StringCoding = 0
	CodingUTF8  StringCoding = 1
)

func (c StringCoding) String() string {
	if c == CodingUTF8 {
		return "utf8"
	}

	return "ascii"
}

// bit positions within the 32-bit TypeInfo word.
const (
	bitBool         = 1 << 4
	bitSigned       = 1 << 5
	bitUnsigned     = 1 << 6
	bitFloat        = 1 << 7
	bitArray        = 1 << 8
	bitString       = 1 << 9
	bitRaw          = 1 << 10
	bitVariableInfo = 1 << 11
	bitFixedPoint   = 1 << 12
	bitTraceInfo    = 1 << 13

	tyleMask        = 0x0F
	stringCodeShift = 15
	stringCodeMask  = 0x07
)

// TypeInfo is the decoded form of a DLT argument's 4-byte type descriptor.
type TypeInfo struct {
	Kind            Kind
	Width           int // 8, 16, 32, 64, or 128 for numeric kinds; 0 otherwise
	StringCoding    StringCoding
	HasVariableInfo bool
	HasTraceInfo    bool
}

var widthToTyle = map[int]uint32{8: 1, 16: 2, 32: 3, 64: 4, 128: 5}
var tyleToWidth = map[uint32]int{1: 8, 2: 16, 3: 32, 4: 64, 5: 128}

func validNumericWidth(w int) bool {
	switch w {
	case 8, 16, 32, 64, 128:
		return true
	default:
		return false
	}
}

func validFloatOrFixedWidth(w int) bool {
	return w == 32 || w == 64
}

// DecodeTypeInfo decodes a 4-byte TypeInfo word from the head of data, using
// engine for byte order. It returns the remaining bytes after the word.
func DecodeTypeInfo(data []byte, engine endian.EndianEngine) (TypeInfo, []byte, error) {
	if len(data) < 4 {
		return TypeInfo{}, nil, errs.NewIncomplete(4 - len(data))
	}

	word := engine.Uint32(data[:4])
	rest := data[4:]

	ti, err := typeInfoFromWord(word)
	if err != nil {
		return TypeInfo{}, nil, err
	}

	return ti, rest, nil
}

func typeInfoFromWord(word uint32) (TypeInfo, error) {
	if word&bitArray != 0 {
		// The array bit is reserved by the wire format but this decoder
		// has no Kind that represents an array argument; decoding one
		// would silently coerce it to its scalar element kind, which the
		// TypeInfo contract explicitly forbids.
		return TypeInfo{}, errs.ErrInvalidTypeInfo
	}

	tyle := word & tyleMask
	width, hasWidth := tyleToWidth[tyle]

	kindBits := word & (bitBool | bitSigned | bitUnsigned | bitFloat | bitString | bitRaw)
	fixedPoint := word&bitFixedPoint != 0

	var kind Kind
	switch {
	case kindBits == bitBool && !fixedPoint:
		kind = KindBool
		width = 0
	case kindBits == bitSigned && !fixedPoint:
		kind = KindSigned
		if !hasWidth || !validNumericWidth(width) {
			return TypeInfo{}, errs.ErrInvalidTypeInfo
		}
	case kindBits == bitUnsigned && !fixedPoint:
		kind = KindUnsigned
		if !hasWidth || !validNumericWidth(width) {
			return TypeInfo{}, errs.ErrInvalidTypeInfo
		}
	case kindBits == bitFloat && !fixedPoint:
		kind = KindFloat
		if !hasWidth || !validFloatOrFixedWidth(width) {
			return TypeInfo{}, errs.ErrInvalidTypeInfo
		}
	case kindBits == bitString && !fixedPoint:
		kind = KindString
		width = 0
	case kindBits == bitRaw && !fixedPoint:
		kind = KindRaw
		width = 0
	case kindBits == bitSigned && fixedPoint:
		kind = KindSignedFixedPoint
		if !hasWidth || !validFloatOrFixedWidth(width) {
			return TypeInfo{}, errs.ErrInvalidTypeInfo
		}
	case kindBits == bitUnsigned && fixedPoint:
		kind = KindUnsignedFixedPoint
		if !hasWidth || !validFloatOrFixedWidth(width) {
			return TypeInfo{}, errs.ErrInvalidTypeInfo
		}
	default:
		return TypeInfo{}, errs.ErrInvalidTypeInfo
	}

	return TypeInfo{
		Kind:            kind,
		Width:           width,
		StringCoding:    StringCoding((word >> stringCodeShift) & stringCodeMask),
		HasVariableInfo: word&bitVariableInfo != 0,
		HasTraceInfo:    word&bitTraceInfo != 0,
	}, nil
}

// Encode serializes ti into its 4-byte wire representation using engine for
// byte order.
func (ti TypeInfo) Encode(engine endian.EndianEngine) []byte {
	word := ti.word()

	b := make([]byte, 4)
	engine.PutUint32(b, word)

	return b
}

func (ti TypeInfo) word() uint32 {
	var word uint32

	switch ti.Kind {
	case KindBool:
		word |= bitBool
	case KindSigned:
		word |= bitSigned
		word |= widthToTyle[ti.Width]
	case KindUnsigned:
		word |= bitUnsigned
		word |= widthToTyle[ti.Width]
	case KindFloat:
		word |= bitFloat
		word |= widthToTyle[ti.Width]
	case KindString:
		word |= bitString
		word |= uint32(ti.StringCoding&stringCodeMask) << stringCodeShift
	case KindRaw:
		word |= bitRaw
	case KindSignedFixedPoint:
		word |= bitSigned | bitFixedPoint
		word |= widthToTyle[ti.Width]
	case KindUnsignedFixedPoint:
		word |= bitUnsigned | bitFixedPoint
		word |= widthToTyle[ti.Width]
	}

	if ti.HasVariableInfo {
		word |= bitVariableInfo
	}
	if ti.HasTraceInfo {
		word |= bitTraceInfo
	}

	return word
}
