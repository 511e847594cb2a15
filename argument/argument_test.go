package argument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dlt/dltcore/argument"
	"github.com/go-dlt/dltcore/endian"
)

func engines() []endian.EndianEngine {
	return []endian.EndianEngine{endian.LittleEndian, endian.BigEndian}
}

func TestTypeInfoRoundTrip(t *testing.T) {
	cases := []argument.TypeInfo{
		{Kind: argument.KindBool},
		{Kind: argument.KindSigned, Width: 8},
		{Kind: argument.KindSigned, Width: 16},
		{Kind: argument.KindSigned, Width: 32},
		{Kind: argument.KindSigned, Width: 64},
		{Kind: argument.KindSigned, Width: 128},
		{Kind: argument.KindUnsigned, Width: 8},
		{Kind: argument.KindUnsigned, Width: 64},
		{Kind: argument.KindFloat, Width: 32},
		{Kind: argument.KindFloat, Width: 64},
		{Kind: argument.KindString, StringCoding: argument.CodingASCII},
		{Kind: argument.KindString, StringCoding: argument.CodingUTF8},
		{Kind: argument.KindRaw},
		{Kind: argument.KindSignedFixedPoint, Width: 32},
		{Kind: argument.KindSignedFixedPoint, Width: 64},
		{Kind: argument.KindUnsignedFixedPoint, Width: 32},
		{Kind: argument.KindUnsignedFixedPoint, Width: 64},
	}

	for _, eng := range engines() {
		for _, ti := range cases {
			ti.HasVariableInfo = false
			ti.HasTraceInfo = true

			b := ti.Encode(eng)
			require.Len(t, b, 4)

			got, rest, err := argument.DecodeTypeInfo(b, eng)
			require.NoError(t, err)
			assert.Empty(t, rest)
			assert.Equal(t, ti, got)
		}
	}
}

func TestTypeInfoInvalidCombinationIsMalformed(t *testing.T) {
	// bool bit + signed bit set simultaneously: undefined combination.
	word := []byte{0x30, 0x00, 0x00, 0x00}
	_, _, err := argument.DecodeTypeInfo(word, endian.LittleEndian)
	assert.Error(t, err)
}

func TestTypeInfoInvalidWidthIsMalformed(t *testing.T) {
	// signed bit set, type length = 5 (128 bits) is fine; use an unused TYLE value (e.g. 0) instead.
	word := make([]byte, 4)
	endian.LittleEndian.PutUint32(word, 1<<5) // signed, TYLE=0 (invalid)
	_, _, err := argument.DecodeTypeInfo(word, endian.LittleEndian)
	assert.Error(t, err)
}

func TestArgumentRoundTrip(t *testing.T) {
	tests := []argument.Argument{
		{
			TypeInfo: argument.TypeInfo{Kind: argument.KindBool},
			Value:    argument.Value{Bool: true},
		},
		{
			TypeInfo: argument.TypeInfo{Kind: argument.KindSigned, Width: 32, HasVariableInfo: true},
			Name:     "temperature",
			Unit:     "C",
			Value:    argument.Value{Signed: -42},
		},
		{
			TypeInfo: argument.TypeInfo{Kind: argument.KindUnsigned, Width: 16},
			Value:    argument.Value{Unsigned: 1000},
		},
		{
			TypeInfo: argument.TypeInfo{Kind: argument.KindFloat, Width: 64},
			Value:    argument.Value{Float: 3.1415926535},
		},
		{
			TypeInfo: argument.TypeInfo{Kind: argument.KindString, StringCoding: argument.CodingUTF8},
			Value:    argument.Value{Str: "hello world"},
		},
		{
			TypeInfo: argument.TypeInfo{Kind: argument.KindRaw},
			Value:    argument.Value{Raw: []byte{0xde, 0xad, 0xbe, 0xef}},
		},
		{
			TypeInfo:   argument.TypeInfo{Kind: argument.KindSignedFixedPoint, Width: 32},
			FixedPoint: argument.FixedPoint{Quantization: 0.1, Offset: -5},
			Value:      argument.Value{Signed: 123},
		},
		{
			TypeInfo:   argument.TypeInfo{Kind: argument.KindUnsignedFixedPoint, Width: 64},
			FixedPoint: argument.FixedPoint{Quantization: 0.01, Offset: 7},
			Value:      argument.Value{Unsigned: 987654},
		},
	}

	for _, eng := range engines() {
		for _, arg := range tests {
			b, err := arg.Encode(eng)
			require.NoError(t, err)

			got, rest, err := argument.DecodeArgument(b, eng)
			require.NoError(t, err)
			assert.Empty(t, rest)
			assert.Equal(t, arg, got)
		}
	}
}

func TestArgumentRoundTripWithAppendedSuffix(t *testing.T) {
	arg := argument.Argument{
		TypeInfo: argument.TypeInfo{Kind: argument.KindUnsigned, Width: 8},
		Value:    argument.Value{Unsigned: 7},
	}

	b, err := arg.Encode(endian.LittleEndian)
	require.NoError(t, err)

	suffix := []byte{0xAA, 0xBB, 0xCC}
	got, rest, err := argument.DecodeArgument(append(b, suffix...), endian.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, arg, got)
	assert.Equal(t, suffix, rest)
}

func TestStringValueToleratesInvalidUTF8Tail(t *testing.T) {
	eng := endian.LittleEndian
	ti := argument.TypeInfo{Kind: argument.KindString}
	raw := []byte{'O', 'K', 0xC3} // truncated multi-byte sequence

	data := ti.Encode(eng)
	lenPrefix := make([]byte, 2)
	eng.PutUint16(lenPrefix, uint16(len(raw)))
	data = append(data, lenPrefix...)
	data = append(data, raw...)

	got, rest, err := argument.DecodeArgument(data, eng)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "OK", got.Value.Str)
}

func TestFixedPointInvalidWidth(t *testing.T) {
	_, _, err := argument.DecodeFixedPoint([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 16, endian.LittleEndian)
	assert.Error(t, err)
}
