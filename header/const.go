package header

// SyncPattern is the 4-byte pattern that precedes a stored DLT message.
var SyncPattern = [4]byte{0x44, 0x4C, 0x54, 0x01} // "DLT\x01"

const (
	// StorageHeaderLen is the fixed size, in bytes, of a StorageHeader.
	StorageHeaderLen = 16
	// EcuIDLen is the fixed size, in bytes, of a zero-terminated ECU id.
	EcuIDLen = 4
	// MinStandardHeaderLen is the size of a StandardHeader with no optional
	// fields present (header_type, message_counter, overall_length).
	MinStandardHeaderLen = 4
	// ExtendedHeaderLen is the fixed size, in bytes, of an ExtendedHeader.
	ExtendedHeaderLen = 10
	// AppIDLen and CtxIDLen are the fixed sizes of the application and
	// context identifiers carried in the extended header.
	AppIDLen = 4
	CtxIDLen = 4
)

// HeaderType flag bits, packed into the standard header's first byte.
const (
	FlagUseExtendedHeader byte = 1 << 0 // UEH
	FlagMSBF              byte = 1 << 1 // MSBF (MostSignificantByteFirst)
	FlagWithEcuID         byte = 1 << 2 // WEID
	FlagWithSessionID     byte = 1 << 3 // WSID
	FlagWithTimestamp     byte = 1 << 4 // WTMS

	versionShift = 5
	versionMask  = 0x07
)

// MSIN flag bits, packed into the extended header's first byte.
const (
	msinVerbose byte = 1 << 0

	msinMstpShift = 1
	msinMstpMask  = 0x07

	msinMtinShift = 4
	msinMtinMask  = 0x0F
)

// MSTP (message type) values carried in bits 1-3 of MSIN.
const (
	MstpLog          uint8 = 0
	MstpAppTrace     uint8 = 1
	MstpNetworkTrace uint8 = 2
	MstpControl      uint8 = 3
)
