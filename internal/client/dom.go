package client

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// Event types dispatched by the page
const (
	EventChange = "change"
	EventSubmit = "submit"
)

// Display values used by the handlers
const (
	DisplayBlock = "block"
	DisplayNone  = "none"
)

// Event is delivered to listeners by Element.Dispatch
type Event struct {
	Type   string
	Target *Element

	mu        sync.Mutex
	prevented bool
}

// NewEvent creates an event of the given type
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

// PreventDefault marks the event so the page skips its default action
func (e *Event) PreventDefault() {
	e.mu.Lock()
	e.prevented = true
	e.mu.Unlock()
}

func (e *Event) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevented
}

// Listener handles an event
type Listener func(ctx context.Context, e *Event)

// Element is a handle to one node of the page. All accessors are safe for
// concurrent use so a slow upload does not race with readers.
type Element struct {
	id   string
	kind string
	name string

	mu        sync.RWMutex
	value     string
	src       string
	text      string
	innerHTML string
	display   string
	classes   []string
	hidden    bool
	disabled  bool
	checked   bool
	files     []*File
	controls  []*Element
	listeners map[string][]Listener
}

// NewElement creates a bare element
func NewElement(id string) *Element {
	return &Element{id: id}
}

// NewRadio creates a radio input in group name with the given value
func NewRadio(name, value string) *Element {
	return &Element{kind: "radio", name: name, value: value}
}

// NewFileInput creates a file input
func NewFileInput(id, name string) *Element {
	return &Element{id: id, kind: "file", name: name}
}

// NewForm creates a form owning the given controls; Reset clears them
func NewForm(id string, controls ...*Element) *Element {
	return &Element{id: id, kind: "form", controls: controls}
}

func (el *Element) ID() string   { return el.id }
func (el *Element) Kind() string { return el.kind }
func (el *Element) Name() string { return el.name }

// AddEventListener registers fn for eventType; listeners run in
// registration order
func (el *Element) AddEventListener(eventType string, fn Listener) {
	el.mu.Lock()
	defer el.mu.Unlock()
	if el.listeners == nil {
		el.listeners = make(map[string][]Listener)
	}
	el.listeners[eventType] = append(el.listeners[eventType], fn)
}

// Dispatch delivers e to the listeners for e.Type, targeting el
func (el *Element) Dispatch(ctx context.Context, e *Event) {
	e.Target = el
	el.mu.RLock()
	listeners := slices.Clone(el.listeners[e.Type])
	el.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, e)
	}
}

func (el *Element) Value() string {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.value
}

func (el *Element) SetValue(v string) {
	el.mu.Lock()
	el.value = v
	el.mu.Unlock()
}

func (el *Element) Src() string {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.src
}

func (el *Element) SetSrc(src string) {
	el.mu.Lock()
	el.src = src
	el.mu.Unlock()
}

// Text is the text content
func (el *Element) Text() string {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.text
}

func (el *Element) SetText(text string) {
	el.mu.Lock()
	el.text = text
	el.mu.Unlock()
}

// InnerHTML is markup; callers escape untrusted text before setting it
func (el *Element) InnerHTML() string {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.innerHTML
}

func (el *Element) SetInnerHTML(markup string) {
	el.mu.Lock()
	el.innerHTML = markup
	el.mu.Unlock()
}

// Display is the inline display style ("", "block" or "none")
func (el *Element) Display() string {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.display
}

func (el *Element) SetDisplay(d string) {
	el.mu.Lock()
	el.display = d
	el.mu.Unlock()
}

// Hidden is the hidden attribute
func (el *Element) Hidden() bool {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.hidden
}

func (el *Element) SetHidden(h bool) {
	el.mu.Lock()
	el.hidden = h
	el.mu.Unlock()
}

func (el *Element) Disabled() bool {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.disabled
}

func (el *Element) SetDisabled(d bool) {
	el.mu.Lock()
	el.disabled = d
	el.mu.Unlock()
}

func (el *Element) Checked() bool {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.checked
}

func (el *Element) SetChecked(c bool) {
	el.mu.Lock()
	el.checked = c
	el.mu.Unlock()
}

// ClassName is the space separated class list
func (el *Element) ClassName() string {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return strings.Join(el.classes, " ")
}

// SetClassName replaces the class list
func (el *Element) SetClassName(names string) {
	el.mu.Lock()
	el.classes = strings.Fields(names)
	el.mu.Unlock()
}

// AddClass adds a class if not already present
func (el *Element) AddClass(name string) {
	el.mu.Lock()
	defer el.mu.Unlock()
	if !slices.Contains(el.classes, name) {
		el.classes = append(el.classes, name)
	}
}

func (el *Element) HasClass(name string) bool {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return slices.Contains(el.classes, name)
}

// Files are the files chosen on a file input
func (el *Element) Files() []*File {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return slices.Clone(el.files)
}

// SetFiles replaces the chosen files
func (el *Element) SetFiles(files ...*File) {
	el.mu.Lock()
	el.files = files
	el.mu.Unlock()
}

// Reset clears the value and chosen files of every control in a form
func (el *Element) Reset() {
	el.mu.RLock()
	controls := slices.Clone(el.controls)
	el.mu.RUnlock()

	for _, c := range controls {
		c.mu.Lock()
		c.files = nil
		if c.kind == "file" {
			c.value = ""
		}
		c.mu.Unlock()
	}
}
