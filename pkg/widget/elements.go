package widget

import (
	"context"
	"errors"
	"html/template"
	"net/url"
	"strings"
	"sync"
)

// Input is the search field the widget reads the query from.
type Input interface {
	Value() string
}

// ResultsArea is the container the widget writes loading text and result
// markup into.
type ResultsArea interface {
	// SetText replaces the content with plain text.
	SetText(text string)
	// Clear removes all content.
	Clear()
	// Append adds rendered markup after the current content.
	Append(markup string)
}

// URLField is the form field that receives the watch URL on Add.
type URLField interface {
	SetValue(value string)
}

// Form is the add-video form submitted on Add.
type Form interface {
	Submit(ctx context.Context) error
}

// TextInput is an in-memory Input. The zero value is ready to use.
type TextInput struct {
	mu    sync.RWMutex
	value string
}

// Type replaces the field's value, as a keystroke would.
func (in *TextInput) Type(value string) {
	in.mu.Lock()
	in.value = value
	in.mu.Unlock()
}

// Value returns the current value.
func (in *TextInput) Value() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.value
}

// Results is an in-memory ResultsArea that keeps its content as markup.
// The zero value is ready to use.
type Results struct {
	mu      sync.RWMutex
	content strings.Builder
}

// SetText replaces the content with text, escaped for HTML.
func (r *Results) SetText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content.Reset()
	r.content.WriteString(template.HTMLEscapeString(text))
}

// Clear removes all content.
func (r *Results) Clear() {
	r.mu.Lock()
	r.content.Reset()
	r.mu.Unlock()
}

// Append adds markup after the current content.
func (r *Results) Append(markup string) {
	r.mu.Lock()
	r.content.WriteString(markup)
	r.mu.Unlock()
}

// HTML returns the current content.
func (r *Results) HTML() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content.String()
}

// Field is a named in-memory form field.
type Field struct {
	mu    sync.RWMutex
	name  string
	value string
}

// Name returns the field's form name.
func (f *Field) Name() string { return f.name }

// SetValue replaces the field's value.
func (f *Field) SetValue(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
}

// Value returns the field's value.
func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// SubmitFunc receives the encoded fields of a submitted form.
type SubmitFunc func(ctx context.Context, values url.Values) error

// ErrNoSubmitter is returned by SubmitForm.Submit when the form has no action.
var ErrNoSubmitter = errors.New("form has no submit action")

// SubmitForm is an in-memory Form whose fields are collected into url.Values
// and handed to its SubmitFunc.
type SubmitForm struct {
	mu     sync.Mutex
	fields []*Field
	submit SubmitFunc
}

// NewForm creates a form that calls submit on Submit.
func NewForm(submit SubmitFunc) *SubmitForm {
	return &SubmitForm{submit: submit}
}

// Field returns the field with the given name, adding it if needed.
func (f *SubmitForm) Field(name string) *Field {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fld := range f.fields {
		if fld.name == name {
			return fld
		}
	}
	fld := &Field{name: name}
	f.fields = append(f.fields, fld)
	return fld
}

// Values encodes the current field values.
func (f *SubmitForm) Values() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := url.Values{}
	for _, fld := range f.fields {
		v.Set(fld.name, fld.Value())
	}
	return v
}

// Submit sends the form's values to its SubmitFunc.
func (f *SubmitForm) Submit(ctx context.Context) error {
	if f.submit == nil {
		return ErrNoSubmitter
	}
	return f.submit(ctx, f.Values())
}
