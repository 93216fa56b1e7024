package plist

import (
	"errors"
	"fmt"

	hplist "howett.net/plist"
)

var (
	// ErrMalformed is returned when the input cannot be decoded as a plist.
	ErrMalformed = errors.New("plist: malformed document")

	// ErrNotDictionary is returned when the top-level object is not a dictionary.
	ErrNotDictionary = errors.New("plist: top-level object is not a dictionary")

	// ErrNotParsed is returned when Contents is read before a successful Parse.
	ErrNotParsed = errors.New("plist: document not parsed")
)

// Document is a property-list document backed by raw bytes.
type Document struct {
	data     []byte
	contents map[string]any
	format   int
}

// New creates a document over data. Nothing is decoded until Parse.
func New(data []byte) *Document {
	return &Document{data: data}
}

// Parse decodes the document. Errors wrap ErrMalformed or ErrNotDictionary.
func (d *Document) Parse() error {
	var v any
	format, err := hplist.Unmarshal(d.data, &v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	m, ok := v.(map[string]any)
	if !ok {
		return ErrNotDictionary
	}

	d.contents = m
	d.format = format
	return nil
}

// Contents returns the decoded top-level dictionary.
func (d *Document) Contents() (map[string]any, error) {
	if d.contents == nil {
		return nil, ErrNotParsed
	}
	return d.contents, nil
}

// Strings returns the string entries of the array stored under key, in
// order. Non-string entries are skipped. ok is false when the key is
// missing, is not an array, or the document has not been parsed.
func (d *Document) Strings(key string) (values []string, ok bool) {
	raw, present := d.contents[key]
	if !present {
		return nil, false
	}

	items, isArray := raw.([]any)
	if !isArray {
		return nil, false
	}

	values = make([]string, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString {
			values = append(values, s)
		}
	}
	return values, true
}

// FormatName returns the detected encoding name ("xml", "binary", ...),
// or "" before a successful Parse.
func (d *Document) FormatName() string {
	if d.contents == nil {
		return ""
	}
	switch d.format {
	case hplist.XMLFormat:
		return "xml"
	case hplist.BinaryFormat:
		return "binary"
	case hplist.OpenStepFormat:
		return "openstep"
	case hplist.GNUStepFormat:
		return "gnustep"
	default:
		return "unknown"
	}
}
