package page

import (
	"context"
	"errors"
	"sync"

	"train-autofill/internal/core/domain"
)

var ErrElementNotFound = errors.New("element not found")

// Listener handles an event dispatched on an element.
type Listener func()

// Element is a form input addressed by ID. Its value is safe for concurrent use.
type Element struct {
	id string

	mu        sync.Mutex
	value     string
	listeners map[string][]Listener
}

func newElement(id string) *Element {
	return &Element{id: id, listeners: make(map[string][]Listener)}
}

func (e *Element) ID() string {
	return e.id
}

func (e *Element) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

// SetValue replaces the value without dispatching any event.
func (e *Element) SetValue(value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = value
}

func (e *Element) AddEventListener(event string, fn Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[event] = append(e.listeners[event], fn)
}

// Dispatch runs the listeners for event in registration order on the caller's goroutine.
func (e *Element) Dispatch(event string) {
	e.mu.Lock()
	listeners := append([]Listener(nil), e.listeners[event]...)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (e *Element) Blur() {
	e.Dispatch(domain.EventBlur)
}

// ReadyFunc runs once when the document finishes loading.
type ReadyFunc func(ctx context.Context, doc *Document) error

// Document holds the elements of one page for as long as the page is loaded.
type Document struct {
	elements map[string]*Element

	mu      sync.Mutex
	onReady []ReadyFunc
	loaded  bool

	ctx    context.Context
	cancel context.CancelFunc
}

func NewDocument(ids ...string) *Document {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Document{
		elements: make(map[string]*Element, len(ids)),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, id := range ids {
		d.elements[id] = newElement(id)
	}
	return d
}

func (d *Document) GetElementByID(id string) (*Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

// OnReady registers fn to run on Load. Registering after Load has no effect.
func (d *Document) OnReady(fn ReadyFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded {
		return
	}
	d.onReady = append(d.onReady, fn)
}

// Load runs the ready callbacks once, stopping at the first error.
func (d *Document) Load() error {
	d.mu.Lock()
	if d.loaded {
		d.mu.Unlock()
		return nil
	}
	d.loaded = true
	callbacks := d.onReady
	d.onReady = nil
	d.mu.Unlock()

	for _, fn := range callbacks {
		if err := fn(d.ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// Unload cancels the page context, abandoning in-flight work bound to it.
func (d *Document) Unload() {
	d.cancel()
}
