package plist

import (
	"fmt"

	hplist "howett.net/plist"
)

// ToXML decodes data in any supported plist encoding and re-encodes it
// as a tab-indented XML plist.
func ToXML(data []byte) ([]byte, error) {
	var v any
	if _, err := hplist.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out, err := hplist.MarshalIndent(v, hplist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("plist: encode xml: %w", err)
	}
	return out, nil
}

// Encode encodes v as a plist in the named format ("xml" or "binary").
// It is used to produce fixtures and by tooling that writes token files.
func Encode(v any, format string) ([]byte, error) {
	switch format {
	case "xml":
		return hplist.MarshalIndent(v, hplist.XMLFormat, "\t")
	case "binary":
		return hplist.Marshal(v, hplist.BinaryFormat)
	default:
		return nil, fmt.Errorf("plist: unsupported format %q", format)
	}
}
