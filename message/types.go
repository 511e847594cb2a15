package message

import (
	"fmt"

	"github.com/go-dlt/dltcore/header"
)

// LogLevel is the severity of a Log message: lower numbers are more
// severe. Values outside 1..6 are invalid but still carry their raw
// number.
type LogLevel uint8

const (
	LogFatal   LogLevel = 1
	LogError   LogLevel = 2
	LogWarn    LogLevel = 3
	LogInfo    LogLevel = 4
	LogDebug   LogLevel = 5
	LogVerbose LogLevel = 6
)

// Valid reports whether l is one of the six defined severities.
func (l LogLevel) Valid() bool {
	return l >= LogFatal && l <= LogVerbose
}

func (l LogLevel) String() string {
	switch l {
	case LogFatal:
		return "fatal"
	case LogError:
		return "error"
	case LogWarn:
		return "warn"
	case LogInfo:
		return "info"
	case LogDebug:
		return "debug"
	case LogVerbose:
		return "verbose"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(l))
	}
}

// TraceType is the mtin value of an ApplicationTrace message.
type TraceType uint8

const (
	TraceVariable    TraceType = 1
	TraceFunctionIn  TraceType = 2
	TraceFunctionOut TraceType = 3
	TraceState       TraceType = 4
	TraceVfb         TraceType = 5
)

func (t TraceType) String() string {
	switch t {
	case TraceVariable:
		return "variable"
	case TraceFunctionIn:
		return "function_in"
	case TraceFunctionOut:
		return "function_out"
	case TraceState:
		return "state"
	case TraceVfb:
		return "vfb"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(t))
	}
}

// NetTraceType is the mtin value of a NetworkTrace message.
type NetTraceType uint8

const (
	NetTraceIPC      NetTraceType = 1
	NetTraceCAN      NetTraceType = 2
	NetTraceFlexray  NetTraceType = 3
	NetTraceMOST     NetTraceType = 4
	NetTraceEthernet NetTraceType = 5
	NetTraceSomeIP   NetTraceType = 6
)

func (t NetTraceType) String() string {
	switch t {
	case NetTraceIPC:
		return "ipc"
	case NetTraceCAN:
		return "can"
	case NetTraceFlexray:
		return "flexray"
	case NetTraceMOST:
		return "most"
	case NetTraceEthernet:
		return "ethernet"
	case NetTraceSomeIP:
		return "someip"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(t))
	}
}

// ControlType is the mtin value of a Control message (request, response,
// or time).
type ControlType uint8

const (
	ControlRequest  ControlType = 1
	ControlResponse ControlType = 2
	ControlTime     ControlType = 3
)

func (t ControlType) String() string {
	switch t {
	case ControlRequest:
		return "request"
	case ControlResponse:
		return "response"
	case ControlTime:
		return "time"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(t))
	}
}

// MessageTypeKind discriminates the variant held by a MessageType.
type MessageTypeKind uint8

const (
	KindLog MessageTypeKind = iota
	KindAppTrace
	KindNetworkTrace
	KindControl
	KindUnknown
)

// MessageType is the tagged union of a message's mstp/mtin classification.
// Only the field matching Kind is meaningful.
type MessageType struct {
	Kind     MessageTypeKind
	LogLevel LogLevel
	Trace    TraceType
	NetTrace NetTraceType
	Control  ControlType
	Unknown  uint8 // raw mstp value, valid when Kind == KindUnknown
}

func (mt MessageType) String() string {
	switch mt.Kind {
	case KindLog:
		return "log(" + mt.LogLevel.String() + ")"
	case KindAppTrace:
		return "app_trace(" + mt.Trace.String() + ")"
	case KindNetworkTrace:
		return "network_trace(" + mt.NetTrace.String() + ")"
	case KindControl:
		return "control(" + mt.Control.String() + ")"
	default:
		return fmt.Sprintf("unknown(%d)", mt.Unknown)
	}
}

// classifyMessageType derives a MessageType from an extended header's mstp
// and mtin fields.
func classifyMessageType(mstp, mtin uint8) MessageType {
	switch mstp {
	case header.MstpLog:
		return MessageType{Kind: KindLog, LogLevel: LogLevel(mtin)}
	case header.MstpAppTrace:
		return MessageType{Kind: KindAppTrace, Trace: TraceType(mtin)}
	case header.MstpNetworkTrace:
		return MessageType{Kind: KindNetworkTrace, NetTrace: NetTraceType(mtin)}
	case header.MstpControl:
		return MessageType{Kind: KindControl, Control: ControlType(mtin)}
	default:
		return MessageType{Kind: KindUnknown, Unknown: mstp}
	}
}
