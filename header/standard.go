package header

import (
	"github.com/go-dlt/dltcore/errs"
)

// StandardHeader is always present in a DLT message. It carries the
// message-type flags, a per-ECU message counter, the overall message
// length (standard + extended headers + payload, excluding any storage
// header), and optional ECU id / session id / timestamp fields gated by
// the header type flags.
type StandardHeader struct {
	Version                  uint8
	UseExtendedHeader        bool
	MostSignificantByteFirst bool
	WithEcuID                bool
	WithSessionID            bool
	WithTimestamp            bool

	MessageCounter uint8
	OverallLength  uint16

	EcuID     string
	SessionID uint32
	Timestamp uint32
}

// Len returns the number of bytes this header occupies on the wire,
// including any optional fields its flags select.
func (h StandardHeader) Len() int {
	n := MinStandardHeaderLen
	if h.WithEcuID {
		n += EcuIDLen
	}
	if h.WithSessionID {
		n += 4
	}
	if h.WithTimestamp {
		n += 4
	}

	return n
}

// PeekOverallLength reads just the overall_length field (bytes 2:4) without
// validating or parsing the rest of the header. Used by readers that need
// the message length before they have the full header buffered.
func PeekOverallLength(data []byte) (uint16, error) {
	if len(data) < MinStandardHeaderLen {
		return 0, errs.NewIncomplete(MinStandardHeaderLen - len(data))
	}

	return uint16(data[2])<<8 | uint16(data[3]), nil
}

// ParseStandardHeader decodes a StandardHeader from the start of data.
// It returns errs.IncompleteError if data doesn't yet contain the full
// header implied by its own header-type byte.
func ParseStandardHeader(data []byte) (StandardHeader, error) {
	if len(data) < MinStandardHeaderLen {
		return StandardHeader{}, errs.NewIncomplete(MinStandardHeaderLen - len(data))
	}

	htyp := data[0]
	h := StandardHeader{
		Version:                  (htyp >> versionShift) & versionMask,
		UseExtendedHeader:        htyp&FlagUseExtendedHeader != 0,
		MostSignificantByteFirst: htyp&FlagMSBF != 0,
		WithEcuID:                htyp&FlagWithEcuID != 0,
		WithSessionID:            htyp&FlagWithSessionID != 0,
		WithTimestamp:            htyp&FlagWithTimestamp != 0,
		MessageCounter:           data[1],
		OverallLength:            uint16(data[2])<<8 | uint16(data[3]),
	}

	total := h.Len()
	if len(data) < total {
		return StandardHeader{}, errs.NewIncomplete(total - len(data))
	}

	off := MinStandardHeaderLen
	if h.WithEcuID {
		ecu, err := ReadIdentifier(data[off:off+EcuIDLen], EcuIDLen)
		if err != nil {
			return StandardHeader{}, err
		}
		h.EcuID = ecu
		off += EcuIDLen
	}
	if h.WithSessionID {
		h.SessionID = be32(data[off : off+4])
		off += 4
	}
	if h.WithTimestamp {
		h.Timestamp = be32(data[off : off+4])
		off += 4
	}

	return h, nil
}

// Bytes serializes h into its wire-format representation.
func (h StandardHeader) Bytes() []byte {
	b := make([]byte, h.Len())

	var htyp byte
	htyp |= (h.Version & versionMask) << versionShift
	if h.UseExtendedHeader {
		htyp |= FlagUseExtendedHeader
	}
	if h.MostSignificantByteFirst {
		htyp |= FlagMSBF
	}
	if h.WithEcuID {
		htyp |= FlagWithEcuID
	}
	if h.WithSessionID {
		htyp |= FlagWithSessionID
	}
	if h.WithTimestamp {
		htyp |= FlagWithTimestamp
	}

	b[0] = htyp
	b[1] = h.MessageCounter
	b[2] = byte(h.OverallLength >> 8)
	b[3] = byte(h.OverallLength)

	off := MinStandardHeaderLen
	if h.WithEcuID {
		copy(b[off:off+EcuIDLen], WriteIdentifier(h.EcuID, EcuIDLen))
		off += EcuIDLen
	}
	if h.WithSessionID {
		putBE32(b[off:off+4], h.SessionID)
		off += 4
	}
	if h.WithTimestamp {
		putBE32(b[off:off+4], h.Timestamp)
		off += 4
	}

	return b
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
