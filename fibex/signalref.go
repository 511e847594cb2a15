package fibex

import (
	"log/slog"

	"github.com/go-dlt/dltcore/argument"
)

func numeric(kind argument.Kind, width int) argument.TypeInfo {
	return argument.TypeInfo{Kind: kind, Width: width, StringCoding: argument.CodingASCII}
}

func stringType(coding argument.StringCoding) argument.TypeInfo {
	return argument.TypeInfo{Kind: argument.KindString, StringCoding: coding}
}

// TypeInfoForSignalRef resolves a FIBEX SIGNAL-REF id to the
// TypeInfo a non-verbose decoder should apply to the matching argument
// slot. signalRef is first checked against the built-in "S_*" short-form
// names; anything else is looked up through signals (SIGNAL id -> CODING
// id) and then codings (CODING id -> base data type name). It reports
// false if the reference can't be resolved to a supported type, logging
// the reason at warn level, matching the original loader's
// best-effort-and-keep-going behavior on unsupported types.
func TypeInfoForSignalRef(signalRef string, signals, codings map[string]string) (argument.TypeInfo, bool) {
	switch signalRef {
	case "S_BOOL":
		return argument.TypeInfo{Kind: argument.KindBool}, true
	case "S_SINT8":
		return numeric(argument.KindSigned, 8), true
	case "S_UINT8":
		return numeric(argument.KindUnsigned, 8), true
	case "S_SINT16":
		return numeric(argument.KindSigned, 16), true
	case "S_UINT16":
		return numeric(argument.KindUnsigned, 16), true
	case "S_SINT32":
		return numeric(argument.KindSigned, 32), true
	case "S_UINT32":
		return numeric(argument.KindUnsigned, 32), true
	case "S_SINT64":
		return numeric(argument.KindSigned, 64), true
	case "S_UINT64":
		return numeric(argument.KindUnsigned, 64), true
	case "S_FLOA16":
		slog.Warn("fibex: 16-bit float signal type not supported", "signal_ref", signalRef)
		return argument.TypeInfo{}, false
	case "S_FLOA32":
		return numeric(argument.KindFloat, 32), true
	case "S_FLOA64":
		return numeric(argument.KindFloat, 64), true
	case "S_STRG_ASCII":
		return stringType(argument.CodingASCII), true
	case "S_STRG_UTF8":
		return stringType(argument.CodingUTF8), true
	case "S_RAWD", "S_RAW":
		return argument.TypeInfo{Kind: argument.KindRaw}, true
	}

	codingRef, ok := signals[signalRef]
	if !ok {
		slog.Warn("fibex: signal ref not found", "signal_ref", signalRef)
		return argument.TypeInfo{}, false
	}

	baseType, ok := codings[codingRef]
	if !ok {
		slog.Warn("fibex: signal found but its coding ref has no base type", "signal_ref", signalRef, "coding_ref", codingRef)
		return argument.TypeInfo{}, false
	}

	switch baseType {
	case "A_UINT8":
		return numeric(argument.KindUnsigned, 8), true
	case "A_INT8", "A_SINT8":
		return numeric(argument.KindSigned, 8), true
	case "A_UINT16":
		return numeric(argument.KindUnsigned, 16), true
	case "A_INT16", "A_SINT16":
		return numeric(argument.KindSigned, 16), true
	case "A_UINT32":
		return numeric(argument.KindUnsigned, 32), true
	case "A_INT32", "A_SINT32":
		return numeric(argument.KindSigned, 32), true
	case "A_UINT64":
		return numeric(argument.KindUnsigned, 64), true
	case "A_INT64", "A_SINT64":
		return numeric(argument.KindSigned, 64), true
	case "A_FLOAT32":
		return numeric(argument.KindFloat, 32), true
	case "A_FLOAT64":
		return numeric(argument.KindFloat, 64), true
	case "A_ASCIISTRING":
		return stringType(argument.CodingASCII), true
	case "A_UNICODE2STRING":
		return stringType(argument.CodingUTF8), true
	default:
		slog.Warn("fibex: signal found but base type not known", "signal_ref", signalRef, "base_type", baseType)
		return argument.TypeInfo{}, false
	}
}
