package message

import (
	"github.com/go-dlt/dltcore/argument"
	"github.com/go-dlt/dltcore/endian"
	"github.com/go-dlt/dltcore/errs"
	"github.com/go-dlt/dltcore/filter"
	"github.com/go-dlt/dltcore/header"
)

// Outcome discriminates the variant held by a Parsed result.
type Outcome uint8

const (
	// OutcomeItem means Message holds a fully decoded message.
	OutcomeItem Outcome = iota
	// OutcomeFilteredOut means headers decoded but the filter dropped the
	// message before its payload was parsed; PayloadLength reports how
	// many bytes were skipped.
	OutcomeFilteredOut
	// OutcomeInvalid means headers were internally inconsistent
	// (all_headers_length exceeded overall_length). DecodeMessage returns
	// this instead of an error, with a nil error and a remainder already
	// advanced past SkipLength bytes, so the caller can continue decoding
	// from the returned remainder directly rather than running a full
	// resync.
	OutcomeInvalid
)

// Parsed is the result of DecodeMessage: Message is meaningful for
// OutcomeItem, PayloadLength for OutcomeFilteredOut (bytes of payload
// skipped), and SkipLength for OutcomeInvalid (bytes already skipped past
// in the returned remainder).
type Parsed struct {
	Outcome       Outcome
	Message       Message
	PayloadLength int
	SkipLength    int
}

// DecodeMessage decodes one message from the head of data. cfg may be nil
// to skip filtering. withStorage selects whether data is expected to begin
// with a storage header (as in a stored trace file) or with a bare
// standard header (as on a live transport).
//
// It implements spec'd algorithm order exactly: locate the sync pattern
// (if withStorage), parse storage/standard/extended headers, validate
// declared lengths against what's actually buffered, evaluate the filter,
// then decode the payload. Each step returns as soon as it can classify
// the input as Incomplete or Malformed — later steps never run on data
// an earlier step already rejected.
func DecodeMessage(data []byte, cfg *filter.ProcessedFilterConfig, withStorage bool) ([]byte, Parsed, error) {
	cursor := data
	var storageHdr *header.StorageHeader

	if withStorage {
		idx := header.FindSyncPattern(cursor)
		if idx == -1 {
			return nil, Parsed{}, errs.ErrNoSyncPattern
		}
		cursor = cursor[idx:]

		sh, err := header.ParseStorageHeader(cursor)
		if err != nil {
			return nil, Parsed{}, err
		}
		storageHdr = &sh
		cursor = cursor[header.StorageHeaderLen:]
	}

	std, err := header.ParseStandardHeader(cursor)
	if err != nil {
		return nil, Parsed{}, err
	}

	allHeadersLength := std.Len()
	if std.UseExtendedHeader {
		allHeadersLength += header.ExtendedHeaderLen
	}

	if allHeadersLength > int(std.OverallLength) {
		skip := errs.SyncPatternLen
		if skip > len(cursor) {
			skip = len(cursor)
		}

		return cursor[skip:], Parsed{Outcome: OutcomeInvalid, SkipLength: skip}, nil
	}

	if int(std.OverallLength) > len(cursor) {
		return nil, Parsed{}, errs.NewIncomplete(int(std.OverallLength) - len(cursor))
	}

	payloadLength := int(std.OverallLength) - allHeadersLength

	var ext *header.ExtendedHeader
	off := std.Len()
	if std.UseExtendedHeader {
		e, err := header.ParseExtendedHeader(cursor[off:])
		if err != nil {
			return nil, Parsed{}, err
		}
		ext = &e
		off += header.ExtendedHeaderLen
	}

	payload := cursor[off : off+payloadLength]
	rest := cursor[int(std.OverallLength):]

	if cfg != nil {
		in := filter.Input{EcuID: ecuIDOf(storageHdr, std)}
		if ext != nil {
			in.HasExtendedHeader = true
			in.AppID = ext.AppID
			in.CtxID = ext.CtxID
			if ext.Mstp == header.MstpLog {
				in.IsLog = true
				in.Level = ext.Mtin
			}
		}

		if cfg.Evaluate(in) {
			return rest, Parsed{Outcome: OutcomeFilteredOut, PayloadLength: payloadLength}, nil
		}
	}

	engine := endian.PayloadEndian(std.MostSignificantByteFirst)

	content, err := decodePayloadContent(payload, ext, engine)
	if err != nil {
		return nil, Parsed{}, err
	}

	msg := Message{
		StorageHeader:  storageHdr,
		StandardHeader: std,
		ExtendedHeader: ext,
		Payload:        content,
	}

	return rest, Parsed{Outcome: OutcomeItem, Message: msg}, nil
}

func ecuIDOf(storageHdr *header.StorageHeader, std header.StandardHeader) string {
	if storageHdr != nil {
		return storageHdr.EcuID
	}

	return std.EcuID
}

func decodePayloadContent(payload []byte, ext *header.ExtendedHeader, engine endian.EndianEngine) (PayloadContent, error) {
	switch {
	case ext != nil && ext.Verbose:
		args := make([]argument.Argument, 0, ext.ArgCount)
		rest := payload
		for i := 0; i < int(ext.ArgCount); i++ {
			arg, next, err := argument.DecodeArgument(rest, engine)
			if err != nil {
				return PayloadContent{}, err
			}
			args = append(args, arg)
			rest = next
		}

		return PayloadContent{Kind: PayloadVerbose, Arguments: args}, nil

	case ext != nil && ext.Mstp == header.MstpControl:
		if len(payload) < 1 {
			return PayloadContent{}, errs.ErrControlPayloadTooShort
		}

		return PayloadContent{
			Kind:        PayloadControl,
			Control:     ControlServiceID(payload[0]),
			ControlData: payload[1:],
		}, nil

	case ext != nil && ext.Mstp == header.MstpNetworkTrace:
		chunks, err := decodeNetworkTraceChunks(payload, engine)
		if err != nil {
			return PayloadContent{}, err
		}

		return PayloadContent{Kind: PayloadNetworkTrace, NetworkTraceChunks: chunks}, nil

	default:
		if len(payload) < 4 {
			return PayloadContent{}, errs.ErrNonVerbosePayloadTooShort
		}

		return PayloadContent{
			Kind:           PayloadNonVerbose,
			MessageID:      engine.Uint32(payload[:4]),
			NonVerboseData: payload[4:],
		}, nil
	}
}

// decodeNetworkTraceChunks decodes a network-trace payload as a sequence of
// raw-kind arguments, reusing the argument package's TypeInfo/length-
// prefix decoding rather than duplicating it.
func decodeNetworkTraceChunks(payload []byte, engine endian.EndianEngine) ([][]byte, error) {
	var chunks [][]byte
	rest := payload

	for len(rest) > 0 {
		arg, next, err := argument.DecodeArgument(rest, engine)
		if err != nil {
			return nil, err
		}
		if arg.TypeInfo.Kind != argument.KindRaw {
			return nil, errs.ErrInvalidTypeInfo
		}

		chunks = append(chunks, arg.Value.Raw)
		rest = next
	}

	return chunks, nil
}
