package header

import (
	"bytes"
	"encoding/binary"

	"github.com/go-dlt/dltcore/errs"
)

// StorageHeader is the 16-byte prefix written when a DLT message is
// persisted: sync pattern, seconds, microseconds (both little-endian), and
// a zero-padded ECU id.
type StorageHeader struct {
	Seconds      uint32
	Microseconds uint32
	EcuID        string
}

// ParseStorageHeader decodes a StorageHeader from data, which must begin
// with the "DLT\x01" sync pattern. data must be at least StorageHeaderLen
// bytes (otherwise it returns an Incomplete error); data that does not
// start with the sync pattern yields a Malformed error. It does not search
// for the pattern; callers locate it via FindSyncPattern first.
func ParseStorageHeader(data []byte) (StorageHeader, error) {
	if len(data) < StorageHeaderLen {
		return StorageHeader{}, errs.NewIncomplete(StorageHeaderLen - len(data))
	}

	if !bytes.Equal(data[:4], SyncPattern[:]) {
		return StorageHeader{}, errs.NewMalformed("storage header missing DLT\\x01 sync pattern")
	}

	ecu, err := ReadIdentifier(data[12:16], EcuIDLen)
	if err != nil {
		return StorageHeader{}, err
	}

	return StorageHeader{
		Seconds:      binary.LittleEndian.Uint32(data[4:8]),
		Microseconds: binary.LittleEndian.Uint32(data[8:12]),
		EcuID:        ecu,
	}, nil
}

// Bytes serializes h into the wire-format 16-byte StorageHeader.
func (h StorageHeader) Bytes() []byte {
	b := make([]byte, StorageHeaderLen)
	copy(b[0:4], SyncPattern[:])
	binary.LittleEndian.PutUint32(b[4:8], h.Seconds)
	binary.LittleEndian.PutUint32(b[8:12], h.Microseconds)
	copy(b[12:16], WriteIdentifier(h.EcuID, EcuIDLen))

	return b
}

// FindSyncPattern returns the index of the first occurrence of the
// storage-header sync pattern in data, or -1 if not present.
func FindSyncPattern(data []byte) int {
	return bytes.Index(data, SyncPattern[:])
}
