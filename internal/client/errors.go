package client

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrSubmitInFlight = errors.New("upload already in progress")
	ErrNoSuchOption   = errors.New("no such option")
)

// Messages shown on the page
const (
	MsgNoFile      = "Please choose a file first."
	MsgSuccess     = "Uploaded successfully."
	MsgUploadError = "Upload failed."
)

// FileTooLargeError is returned before any request is made
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %s MB (max %g MB)", formatMB(e.Size), float64(e.Limit)/mib)
}

// HTTPError is a non-2xx reply from the upload endpoint. Body is the raw
// reply text; any non-empty body is shown in place of the status line.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		// http.Error terminates its text with a newline
		return strings.TrimSuffix(e.Body, "\n")
	}
	return fmt.Sprintf("Upload failed with status %d", e.Status)
}

// RequestError is a failure to reach the endpoint or to decode its reply
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }

// Message returns the text shown on the page for err
func Message(err error) string {
	var (
		tooLarge *FileTooLargeError
		httpErr  *HTTPError
		reqErr   *RequestError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoFileSelected):
		return MsgNoFile
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("File too large: %s MB (max %g MB).",
			formatMB(tooLarge.Size), float64(tooLarge.Limit)/mib)
	case errors.As(err, &httpErr):
		return httpErr.Error()
	case errors.As(err, &reqErr):
		if msg := strings.TrimSpace(reqErr.Err.Error()); msg != "" {
			return msg
		}
		return MsgUploadError
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return MsgUploadError
}
