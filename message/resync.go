package message

import (
	"github.com/go-dlt/dltcore/errs"
	"github.com/go-dlt/dltcore/header"
)

// AdvancePastNextStorageHeader scans data for the next occurrence of the
// storage-header sync pattern and returns the number of leading bytes that
// aren't part of it. The caller resumes decoding at data[consumed:], which
// begins with "DLT\x01". Returns a Malformed error if no occurrence exists
// anywhere in data.
func AdvancePastNextStorageHeader(data []byte) (int, error) {
	idx := header.FindSyncPattern(data)
	if idx == -1 {
		return 0, errs.ErrNoSyncFound
	}

	return idx, nil
}
