package message_test

import (
	"math/rand"

	"github.com/go-dlt/dltcore/argument"
	"github.com/go-dlt/dltcore/header"
	"github.com/go-dlt/dltcore/message"
)

// The helpers below generate arbitrary-but-valid verbose log messages,
// varying the argument dimensions (kind x width x coding x variable-info x
// trace-info) and the standard header flags, for round-trip tests. This is
// a deterministic-seed stand-in for a property-testing framework: nothing
// in this module's ecosystem offers one, so these are plain generators
// taking a *rand.Rand, called from fixed-seed tests rather than an
// exhaustive shrink-capable fuzzer.

func randArgument(r *rand.Rand) argument.Argument {
	kinds := []argument.Kind{
		argument.KindBool, argument.KindSigned, argument.KindUnsigned,
		argument.KindFloat, argument.KindString, argument.KindRaw,
		argument.KindSignedFixedPoint, argument.KindUnsignedFixedPoint,
	}
	kind := kinds[r.Intn(len(kinds))]

	ti := argument.TypeInfo{Kind: kind, HasTraceInfo: r.Intn(2) == 0}
	arg := argument.Argument{TypeInfo: ti}

	switch kind {
	case argument.KindBool:
		arg.Value = argument.Value{Bool: r.Intn(2) == 0}
	case argument.KindSigned:
		widths := []int{8, 16, 32, 64}
		ti.Width = widths[r.Intn(len(widths))]
		arg.TypeInfo = ti
		v := int64(r.Int31()) - int64(r.Int31())
		shift := 64 - ti.Width
		arg.Value = argument.Value{Signed: v << shift >> shift}
	case argument.KindSignedFixedPoint:
		widths := []int{32, 64}
		ti.Width = widths[r.Intn(len(widths))]
		arg.TypeInfo = ti
		arg.Value = argument.Value{Signed: int64(r.Int31())}
		arg.FixedPoint = argument.FixedPoint{Quantization: r.Float32(), Offset: int64(r.Int31())}
	case argument.KindUnsigned:
		widths := []int{8, 16, 32, 64}
		ti.Width = widths[r.Intn(len(widths))]
		arg.TypeInfo = ti
		arg.Value = argument.Value{Unsigned: uint64(r.Uint32()) & (uint64(1)<<ti.Width - 1)}
	case argument.KindUnsignedFixedPoint:
		widths := []int{32, 64}
		ti.Width = widths[r.Intn(len(widths))]
		arg.TypeInfo = ti
		arg.Value = argument.Value{Unsigned: uint64(r.Uint32())}
		arg.FixedPoint = argument.FixedPoint{Quantization: r.Float32(), Offset: int64(r.Int31())}
	case argument.KindFloat:
		widths := []int{32, 64}
		ti.Width = widths[r.Intn(len(widths))]
		arg.TypeInfo = ti
		arg.Value = argument.Value{Float: r.Float64()}
		if ti.Width == 32 {
			arg.Value.Float = float64(float32(arg.Value.Float))
		}
	case argument.KindString:
		ti.StringCoding = argument.StringCoding(r.Intn(2))
		arg.TypeInfo = ti
		arg.Value = argument.Value{Str: "payload-" + string(rune('a'+r.Intn(26)))}
	case argument.KindRaw:
		raw := make([]byte, r.Intn(8))
		r.Read(raw)
		arg.Value = argument.Value{Raw: raw}
	}

	if r.Intn(2) == 0 {
		arg.TypeInfo.HasVariableInfo = true
		arg.Name = "name" + string(rune('a'+r.Intn(26)))
		arg.Unit = "u"
	}

	return arg
}

func randVerboseMessage(r *rand.Rand) message.Message {
	argCount := r.Intn(4)
	args := make([]argument.Argument, argCount)
	for i := range args {
		args[i] = randArgument(r)
	}

	ext := header.ExtendedHeader{
		Verbose:  true,
		Mstp:     header.MstpLog,
		Mtin:     uint8(1 + r.Intn(6)),
		ArgCount: uint8(argCount),
		AppID:    "APP",
		CtxID:    "CTX",
	}

	std := header.StandardHeader{
		Version:                  1,
		UseExtendedHeader:        true,
		MostSignificantByteFirst: r.Intn(2) == 0,
		WithEcuID:                r.Intn(2) == 0,
		MessageCounter:           uint8(r.Intn(256)),
		EcuID:                    "ECU",
	}
	if !std.WithEcuID {
		std.EcuID = ""
	}

	return message.Message{
		StandardHeader: std,
		ExtendedHeader: &ext,
		Payload:        message.PayloadContent{Kind: message.PayloadVerbose, Arguments: args},
	}
}
