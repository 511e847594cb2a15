package message

import "fmt"

// ControlServiceID identifies the operation a Control message's first
// payload byte selects.
type ControlServiceID uint8

// The officially assigned DLT control service ids. Several are marked
// deprecated in the standard but are kept here since decoders still
// encounter them in the wild.
const (
	SetLogLevel                 ControlServiceID = 0x01
	SetTraceStatus              ControlServiceID = 0x02
	GetLogInfo                  ControlServiceID = 0x03
	GetDefaultLogLevel          ControlServiceID = 0x04
	StoreConfiguration          ControlServiceID = 0x05
	RestoreToFactoryDefault     ControlServiceID = 0x06
	SetComInterfaceStatus       ControlServiceID = 0x07
	SetComInterfaceMaxBandwidth ControlServiceID = 0x08
	SetVerboseMode              ControlServiceID = 0x09
	SetMessageFiltering         ControlServiceID = 0x0A
	SetTimingPackets            ControlServiceID = 0x0B
	GetLocalTime                ControlServiceID = 0x0C
	SetUseECUID                 ControlServiceID = 0x0D
	SetUseSessionID             ControlServiceID = 0x0E
	SetUseTimestamp             ControlServiceID = 0x0F
	SetUseExtendedHeader        ControlServiceID = 0x10
	SetDefaultLogLevel          ControlServiceID = 0x11
	SetDefaultTraceStatus       ControlServiceID = 0x12
	GetSoftwareVersion          ControlServiceID = 0x13
	MessageBufferOverflow       ControlServiceID = 0x14
	GetDefaultTraceStatus       ControlServiceID = 0x15
	GetComInterfaceStatus       ControlServiceID = 0x16
	GetLogChannelNames          ControlServiceID = 0x17
	GetComInterfaceMaxBandwidth ControlServiceID = 0x18
	GetVerboseModeStatus        ControlServiceID = 0x19
	GetMessageFilteringStatus   ControlServiceID = 0x1A
	GetUseECUID                 ControlServiceID = 0x1B
	GetUseSessionID             ControlServiceID = 0x1C
	GetUseTimestamp             ControlServiceID = 0x1D
	GetUseExtendedHeader        ControlServiceID = 0x1E
	GetTraceStatus              ControlServiceID = 0x1F
	SetLogChannelAssignment     ControlServiceID = 0x20
	SetLogChannelThreshold      ControlServiceID = 0x21
	GetLogChannelThreshold      ControlServiceID = 0x22
	BufferOverflowNotification  ControlServiceID = 0x23
)

var controlServiceNames = map[ControlServiceID]string{
	SetLogLevel:                 "set_log_level",
	SetTraceStatus:              "set_trace_status",
	GetLogInfo:                  "get_log_info",
	GetDefaultLogLevel:          "get_default_log_level",
	StoreConfiguration:          "store_configuration",
	RestoreToFactoryDefault:     "restore_to_factory_default",
	SetComInterfaceStatus:       "set_com_interface_status",
	SetComInterfaceMaxBandwidth: "set_com_interface_max_bandwidth",
	SetVerboseMode:              "set_verbose_mode",
	SetMessageFiltering:         "set_message_filtering",
	SetTimingPackets:            "set_timing_packets",
	GetLocalTime:                "get_local_time",
	SetUseECUID:                 "set_use_ecuid",
	SetUseSessionID:             "set_use_session_id",
	SetUseTimestamp:             "set_use_timestamp",
	SetUseExtendedHeader:        "set_use_extended_header",
	SetDefaultLogLevel:          "set_default_log_level",
	SetDefaultTraceStatus:       "set_default_trace_status",
	GetSoftwareVersion:          "get_software_version",
	MessageBufferOverflow:       "message_buffer_overflow",
	GetDefaultTraceStatus:       "get_default_trace_status",
	GetComInterfaceStatus:       "get_com_interface_status",
	GetLogChannelNames:          "get_log_channel_names",
	GetComInterfaceMaxBandwidth: "get_com_interface_max_bandwidth",
	GetVerboseModeStatus:        "get_verbose_mode_status",
	GetMessageFilteringStatus:   "get_message_filtering_status",
	GetUseECUID:                 "get_use_ecuid",
	GetUseSessionID:             "get_use_session_id",
	GetUseTimestamp:             "get_use_timestamp",
	GetUseExtendedHeader:        "get_use_extended_header",
	GetTraceStatus:              "get_trace_status",
	SetLogChannelAssignment:     "set_log_channel_assignment",
	SetLogChannelThreshold:      "set_log_channel_threshold",
	GetLogChannelThreshold:      "get_log_channel_threshold",
	BufferOverflowNotification:  "buffer_overflow_notification",
}

// String renders the service's canonical name, or "unknown(n)" for an
// unassigned id.
func (id ControlServiceID) String() string {
	if name, ok := controlServiceNames[id]; ok {
		return name
	}

	return fmt.Sprintf("unknown(0x%02x)", uint8(id))
}

// Known reports whether id is one of the officially assigned service ids.
func (id ControlServiceID) Known() bool {
	_, ok := controlServiceNames[id]
	return ok
}
