package header

import "github.com/go-dlt/dltcore/errs"

// ExtendedHeader is present iff the standard header's UseExtendedHeader
// flag is set. It carries the verbose flag, message type/type-info, the
// argument count, and the application/context identifiers.
type ExtendedHeader struct {
	Verbose bool
	Mstp    uint8 // message type, 3 bits
	Mtin    uint8 // message type info, 4 bits

	ArgCount uint8
	AppID    string
	CtxID    string
}

// ParseExtendedHeader decodes an ExtendedHeader from the start of data.
func ParseExtendedHeader(data []byte) (ExtendedHeader, error) {
	if len(data) < ExtendedHeaderLen {
		return ExtendedHeader{}, errs.NewIncomplete(ExtendedHeaderLen - len(data))
	}

	msin := data[0]

	appID, err := ReadIdentifier(data[2:6], AppIDLen)
	if err != nil {
		return ExtendedHeader{}, err
	}

	ctxID, err := ReadIdentifier(data[6:10], CtxIDLen)
	if err != nil {
		return ExtendedHeader{}, err
	}

	return ExtendedHeader{
		Verbose:  msin&msinVerbose != 0,
		Mstp:     (msin >> msinMstpShift) & msinMstpMask,
		Mtin:     (msin >> msinMtinShift) & msinMtinMask,
		ArgCount: data[1],
		AppID:    appID,
		CtxID:    ctxID,
	}, nil
}

// Bytes serializes h into its wire-format 10-byte representation.
func (h ExtendedHeader) Bytes() []byte {
	b := make([]byte, ExtendedHeaderLen)

	var msin byte
	if h.Verbose {
		msin |= msinVerbose
	}
	msin |= (h.Mstp & msinMstpMask) << msinMstpShift
	msin |= (h.Mtin & msinMtinMask) << msinMtinShift

	b[0] = msin
	b[1] = h.ArgCount
	copy(b[2:6], WriteIdentifier(h.AppID, AppIDLen))
	copy(b[6:10], WriteIdentifier(h.CtxID, CtxIDLen))

	return b
}
