package message

import (
	"github.com/go-dlt/dltcore/errs"
	"github.com/go-dlt/dltcore/header"
)

// ConsumeMessage skips over one storage-framed message without decoding its
// extended header or payload, for counting utilities that only need to
// walk a stream. It returns the bytes after the message and how many bytes
// were consumed. If data is empty, it returns (nil, nil, nil): there is
// nothing left to consume and that isn't an error.
func ConsumeMessage(data []byte) ([]byte, *int, error) {
	if len(data) == 0 {
		return nil, nil, nil
	}

	if _, err := header.ParseStorageHeader(data); err != nil {
		return nil, nil, err
	}
	afterStorage := data[header.StorageHeaderLen:]

	std, err := header.ParseStandardHeader(afterStorage)
	if err != nil {
		return nil, nil, err
	}

	total := header.StorageHeaderLen + int(std.OverallLength)
	if total > len(data) {
		return nil, nil, errs.NewIncomplete(total - len(data))
	}

	consumed := total

	return data[total:], &consumed, nil
}
