package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saransh1220/animal-drop/internal/shared/logger"
)

const (
	// UploadPath is the endpoint the form posts to
	UploadPath = "/upload"
	// FormField is the multipart field carrying the file
	FormField = "file"
	// MaxFileBytes is the largest file sent to the server
	MaxFileBytes int64 = 5 * mib

	maxErrorBody = 64 << 10
)

// Message classes
const (
	classMsg = "msg"
	classOK  = "ok"
	classErr = "err"
)

// UploadElements are the handles the submitter reads and writes
type UploadElements struct {
	Form         *Element
	FileInput    *Element
	SubmitButton *Element // optional
	Message      *Element
	ResultsCard  *Element
	ResultsBody  *Element
}

// UploadSubmitter sends the chosen file and reports the outcome on the page
type UploadSubmitter struct {
	el       UploadElements
	endpoint string
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
	logger   *log.Logger

	inFlight atomic.Bool
}

type SubmitterOption func(*UploadSubmitter)

func WithHTTPClient(c *http.Client) SubmitterOption {
	return func(s *UploadSubmitter) { s.client = c }
}

// WithTimeout bounds each upload; zero waits for as long as ctx allows
func WithTimeout(d time.Duration) SubmitterOption {
	return func(s *UploadSubmitter) { s.timeout = d }
}

func WithMaxBytes(n int64) SubmitterOption {
	return func(s *UploadSubmitter) { s.maxBytes = n }
}

func WithSubmitterLogger(l *log.Logger) SubmitterOption {
	return func(s *UploadSubmitter) { s.logger = l }
}

// NewUploadSubmitter posts to origin + /upload
func NewUploadSubmitter(el UploadElements, origin string, opts ...SubmitterOption) *UploadSubmitter {
	s := &UploadSubmitter{
		el:       el,
		endpoint: strings.TrimRight(origin, "/") + UploadPath,
		client:   http.DefaultClient,
		maxBytes: MaxFileBytes,
		logger:   logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Endpoint is the URL uploads are posted to
func (s *UploadSubmitter) Endpoint() string { return s.endpoint }

// Bind subscribes the submitter to submit events on the form
func (s *UploadSubmitter) Bind() {
	s.el.Form.AddEventListener(EventSubmit, s.HandleSubmit)
}

// HandleSubmit suppresses the native submission and runs Submit. The outcome
// is reported on the page.
func (s *UploadSubmitter) HandleSubmit(ctx context.Context, e *Event) {
	e.PreventDefault()
	if _, err := s.Submit(ctx); err != nil {
		s.logger.Debug("[UploadSubmitter.HandleSubmit] upload not completed", "err", err)
	}
}

// Submit uploads the first chosen file. While a call is running further
// calls return ErrSubmitInFlight and leave the page untouched.
func (s *UploadSubmitter) Submit(ctx context.Context) (*UploadResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	if btn := s.el.SubmitButton; btn != nil {
		btn.SetDisabled(true)
		defer btn.SetDisabled(false)
	}

	s.resetMessage()

	files := s.el.FileInput.Files()
	if len(files) == 0 || files[0] == nil {
		return nil, s.fail(ErrNoFileSelected)
	}
	file := files[0]
	if file.Size > s.maxBytes {
		return nil, s.fail(&FileTooLargeError{Size: file.Size, Limit: s.maxBytes})
	}

	result, err := s.send(ctx, file)
	if err != nil {
		s.logger.Warn("[UploadSubmitter.Submit] upload failed", "file", file.Name, "err", err)
		return nil, s.fail(err)
	}

	s.showMessage(MsgSuccess, classOK)
	s.el.ResultsBody.SetInnerHTML(RenderRow(*result))
	s.el.ResultsCard.SetHidden(false)
	s.el.Form.Reset()
	s.logger.Info("[UploadSubmitter.Submit] uploaded", "file", result.Filename, "size_mb", result.SizeMB)
	return result, nil
}

func (s *UploadSubmitter) send(ctx context.Context, file *File) (*UploadResult, error) {
	body, contentType, err := encodeFile(file)
	if err != nil {
		return nil, &RequestError{Op: "read file", Err: err}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, body)
	if err != nil {
		return nil, &RequestError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &RequestError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{Status: resp.StatusCode, Body: string(text)}
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &RequestError{Op: "decode response", Err: err}
	}
	return &result, nil
}

func encodeFile(file *File) (*bytes.Buffer, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(fileHeader(file))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func fileHeader(file *File) textproto.MIMEHeader {
	ct := file.Type
	if ct == "" {
		ct = "application/octet-stream"
	}
	return textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			FormField, quoteEscaper.Replace(file.Name))},
		"Content-Type": {ct},
	}
}

func (s *UploadSubmitter) resetMessage() {
	m := s.el.Message
	m.SetClassName(classMsg)
	m.SetDisplay(DisplayNone)
	m.SetText("")
}

func (s *UploadSubmitter) showMessage(text, class string) {
	m := s.el.Message
	m.SetText(text)
	m.AddClass(class)
	m.SetDisplay(DisplayBlock)
}

func (s *UploadSubmitter) fail(err error) error {
	s.showMessage(Message(err), classErr)
	s.el.ResultsCard.SetHidden(true)
	return err
}
