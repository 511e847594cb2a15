package message

import "github.com/go-dlt/dltcore/argument"

// PayloadKind discriminates the variant held by a PayloadContent.
type PayloadKind uint8

const (
	PayloadVerbose PayloadKind = iota
	PayloadNonVerbose
	PayloadControl
	PayloadNetworkTrace
)

// PayloadContent is the tagged union of a message's decoded payload. Only
// the fields matching Kind are meaningful.
type PayloadContent struct {
	Kind PayloadKind

	// PayloadVerbose
	Arguments []argument.Argument

	// PayloadNonVerbose
	MessageID      uint32
	NonVerboseData []byte

	// PayloadControl
	Control     ControlServiceID
	ControlData []byte

	// PayloadNetworkTrace
	NetworkTraceChunks [][]byte
}
