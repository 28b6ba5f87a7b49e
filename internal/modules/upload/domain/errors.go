package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrUploadNotFound  = errors.New("upload not found")
	ErrHistoryDisabled = errors.New("upload history is not configured")
)

// SizeUnknown marks a FileTooLargeError raised before the file was measured
const SizeUnknown int64 = -1

// FileTooLargeError reports a file over the upload limit
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	if e.Size < 0 {
		return fmt.Sprintf("File too large (max %g MB).", float64(e.Limit)/MiB)
	}
	return fmt.Sprintf("File too large: %.2f MB (max %g MB).", float64(e.Size)/MiB, float64(e.Limit)/MiB)
}

// CheckSize returns a *FileTooLargeError when size exceeds limit
func CheckSize(size, limit int64) error {
	if size > limit {
		return &FileTooLargeError{Size: size, Limit: limit}
	}
	return nil
}
