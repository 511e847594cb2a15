package message

import (
	"github.com/go-dlt/dltcore/argument"
	"github.com/go-dlt/dltcore/endian"
	"github.com/go-dlt/dltcore/header"
)

// Message is one fully decoded DLT message: an optional storage header, the
// always-present standard header, an optional extended header, and its
// decoded payload. It is owned by the caller once returned; nothing in the
// decoder retains a reference to it.
type Message struct {
	StorageHeader  *header.StorageHeader
	StandardHeader header.StandardHeader
	ExtendedHeader *header.ExtendedHeader
	Payload        PayloadContent
}

// Type classifies the message from its extended header's mstp/mtin, or
// reports KindUnknown if no extended header is present.
func (m Message) Type() MessageType {
	if m.ExtendedHeader == nil {
		return MessageType{Kind: KindUnknown}
	}

	return classifyMessageType(m.ExtendedHeader.Mstp, m.ExtendedHeader.Mtin)
}

// EcuID returns the message's ecu id, preferring the storage header's (if
// present) over the standard header's.
func (m Message) EcuID() string {
	if m.StorageHeader != nil {
		return m.StorageHeader.EcuID
	}

	return m.StandardHeader.EcuID
}

// IsVerbose reports whether the message carries a self-describing verbose
// payload.
func (m Message) IsVerbose() bool {
	return m.ExtendedHeader != nil && m.ExtendedHeader.Verbose
}

// Bytes serializes m back into its wire-format representation. The
// standard header's OverallLength is recomputed from the encoded headers
// and payload rather than trusted from m, so the result is always
// internally consistent.
func (m Message) Bytes() ([]byte, error) {
	engine := endian.PayloadEndian(m.StandardHeader.MostSignificantByteFirst)

	payloadBytes, err := encodePayloadContent(m.Payload, engine)
	if err != nil {
		return nil, err
	}

	std := m.StandardHeader
	allHeadersLength := std.Len()
	if std.UseExtendedHeader {
		allHeadersLength += header.ExtendedHeaderLen
	}
	std.OverallLength = uint16(allHeadersLength + len(payloadBytes))

	out := make([]byte, 0, header.StorageHeaderLen+allHeadersLength+len(payloadBytes))
	if m.StorageHeader != nil {
		out = append(out, m.StorageHeader.Bytes()...)
	}
	out = append(out, std.Bytes()...)
	if std.UseExtendedHeader && m.ExtendedHeader != nil {
		out = append(out, m.ExtendedHeader.Bytes()...)
	}
	out = append(out, payloadBytes...)

	return out, nil
}

func encodePayloadContent(pc PayloadContent, engine endian.EndianEngine) ([]byte, error) {
	switch pc.Kind {
	case PayloadVerbose:
		var out []byte
		for _, arg := range pc.Arguments {
			b, err := arg.Encode(engine)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}

		return out, nil

	case PayloadNonVerbose:
		out := make([]byte, 4+len(pc.NonVerboseData))
		engine.PutUint32(out[:4], pc.MessageID)
		copy(out[4:], pc.NonVerboseData)

		return out, nil

	case PayloadControl:
		out := make([]byte, 1+len(pc.ControlData))
		out[0] = byte(pc.Control)
		copy(out[1:], pc.ControlData)

		return out, nil

	case PayloadNetworkTrace:
		var out []byte
		for _, chunk := range pc.NetworkTraceChunks {
			arg := argument.Argument{
				TypeInfo: argument.TypeInfo{Kind: argument.KindRaw},
				Value:    argument.Value{Raw: chunk},
			}
			b, err := arg.Encode(engine)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		}

		return out, nil

	default:
		return nil, nil
	}
}
