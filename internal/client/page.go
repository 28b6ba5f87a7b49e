package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	previewDomain "github.com/saransh1220/animal-drop/internal/modules/preview/domain"
)

// Element ids on the upload page
const (
	IDImage        = "animal-img"
	IDForm         = "uploadForm"
	IDFileInput    = "fileInput"
	IDSubmitButton = "uploadButton"
	IDMessage      = "fileMsg"
	IDResultsCard  = "uploadResults"
	IDResultsBody  = "resultsBody"
)

var ErrMissingElement = errors.New("page element missing")

// Page holds every element the handlers touch. It is built once and the
// handles are shared with PreviewSelector and UploadSubmitter.
type Page struct {
	Radios       []*Element
	Image        *Element
	Placeholder  *Element
	Form         *Element
	FileInput    *Element
	SubmitButton *Element
	Message      *Element
	ResultsCard  *Element
	ResultsBody  *Element
}

// NewPage builds the page in its initial state with one radio per animal
func NewPage(animals ...string) *Page {
	p := &Page{
		Image:        NewElement(IDImage),
		Placeholder:  NewElement(""),
		FileInput:    NewFileInput(IDFileInput, FormField),
		SubmitButton: NewElement(IDSubmitButton),
		Message:      NewElement(IDMessage),
		ResultsCard:  NewElement(IDResultsCard),
		ResultsBody:  NewElement(IDResultsBody),
	}
	for _, a := range animals {
		p.Radios = append(p.Radios, NewRadio(previewDomain.GroupName, a))
	}
	p.Image.SetDisplay(DisplayNone)
	p.Placeholder.AddClass("placeholder")
	p.Form = NewForm(IDForm, p.FileInput)
	p.Message.SetClassName(classMsg)
	p.Message.SetDisplay(DisplayNone)
	p.ResultsCard.SetHidden(true)
	return p
}

// ParsePage builds a Page from the markup served at /
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	require := func(selector string) (*goquery.Selection, error) {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingElement, selector)
		}
		return sel, nil
	}

	p := &Page{}
	doc.Find(fmt.Sprintf(`input[type="radio"][name="%s"]`, previewDomain.GroupName)).Each(func(_ int, s *goquery.Selection) {
		radio := NewRadio(previewDomain.GroupName, s.AttrOr("value", ""))
		_, checked := s.Attr("checked")
		radio.SetChecked(checked)
		p.Radios = append(p.Radios, radio)
	})

	img, err := require("#" + IDImage)
	if err != nil {
		return nil, err
	}
	p.Image = NewElement(IDImage)
	p.Image.SetSrc(img.AttrOr("src", ""))
	p.Image.SetDisplay(displayOf(img))

	ph, err := require(".placeholder")
	if err != nil {
		return nil, err
	}
	p.Placeholder = NewElement(ph.AttrOr("id", ""))
	p.Placeholder.SetClassName(ph.AttrOr("class", ""))
	p.Placeholder.SetDisplay(displayOf(ph))

	if _, err := require("#" + IDFileInput); err != nil {
		return nil, err
	}
	p.FileInput = NewFileInput(IDFileInput, FormField)

	if _, err := require("#" + IDForm); err != nil {
		return nil, err
	}
	p.Form = NewForm(IDForm, p.FileInput)

	if doc.Find("#"+IDSubmitButton).Length() > 0 {
		p.SubmitButton = NewElement(IDSubmitButton)
	}

	msg, err := require("#" + IDMessage)
	if err != nil {
		return nil, err
	}
	p.Message = NewElement(IDMessage)
	p.Message.SetClassName(msg.AttrOr("class", ""))
	p.Message.SetDisplay(displayOf(msg))

	card, err := require("#" + IDResultsCard)
	if err != nil {
		return nil, err
	}
	p.ResultsCard = NewElement(IDResultsCard)
	_, hidden := card.Attr("hidden")
	p.ResultsCard.SetHidden(hidden)

	body, err := require("#" + IDResultsBody)
	if err != nil {
		return nil, err
	}
	p.ResultsBody = NewElement(IDResultsBody)
	inner, _ := body.Html()
	p.ResultsBody.SetInnerHTML(inner)

	return p, nil
}

func displayOf(s *goquery.Selection) string {
	style := s.AttrOr("style", "")
	switch {
	case containsDecl(style, DisplayNone):
		return DisplayNone
	case containsDecl(style, DisplayBlock):
		return DisplayBlock
	}
	return ""
}

func containsDecl(style, display string) bool {
	for decl := range strings.SplitSeq(style, ";") {
		if strings.Join(strings.Fields(decl), "") == "display:"+display {
			return true
		}
	}
	return false
}

// Radio returns the radio with the given value
func (p *Page) Radio(value string) (*Element, error) {
	for _, r := range p.Radios {
		if r.Value() == value {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSuchOption, value)
}

// Choose checks the radio for value and fires its change event
func (p *Page) Choose(ctx context.Context, value string) error {
	radio, err := p.Radio(value)
	if err != nil {
		return err
	}
	for _, r := range p.Radios {
		r.SetChecked(r == radio)
	}
	radio.Dispatch(ctx, NewEvent(EventChange))
	return nil
}

// ChooseFile sets the file input selection; nil clears it
func (p *Page) ChooseFile(f *File) {
	if f == nil {
		p.FileInput.SetFiles()
		return
	}
	p.FileInput.SetFiles(f)
}

// SubmitForm fires a submit event on the form and returns it
func (p *Page) SubmitForm(ctx context.Context) *Event {
	e := NewEvent(EventSubmit)
	p.Form.Dispatch(ctx, e)
	return e
}

// App is a page with both handlers bound
type App struct {
	Page     *Page
	Preview  *PreviewSelector
	Uploader *UploadSubmitter
}

// Mount wires a PreviewSelector and an UploadSubmitter to p. Uploads go to
// origin + /upload.
func Mount(p *Page, origin string, opts ...SubmitterOption) *App {
	preview := NewPreviewSelector(p.Image, p.Placeholder)
	preview.Bind(p.Radios...)

	uploader := NewUploadSubmitter(UploadElements{
		Form:         p.Form,
		FileInput:    p.FileInput,
		SubmitButton: p.SubmitButton,
		Message:      p.Message,
		ResultsCard:  p.ResultsCard,
		ResultsBody:  p.ResultsBody,
	}, origin, opts...)
	uploader.Bind()

	return &App{Page: p, Preview: preview, Uploader: uploader}
}
