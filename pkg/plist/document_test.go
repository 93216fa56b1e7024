package plist

import (
	"errors"
	"strings"
	"testing"
)

const headersXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>AdditionalHttpHeaders</key>
	<array>
		<string>X-Other: 1</string>
		<integer>42</integer>
		<string>Cookie: Auth1Token=abc123;Path=/</string>
	</array>
	<key>SoftwareRepoURL</key>
	<string>https://simian.example.com</string>
</dict>
</plist>
`

func TestDocument_Parse(t *testing.T) {
	doc := New([]byte(headersXML))
	if err := doc.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	contents, err := doc.Contents()
	if err != nil {
		t.Fatalf("Contents() error = %v", err)
	}
	if contents["SoftwareRepoURL"] != "https://simian.example.com" {
		t.Errorf("SoftwareRepoURL = %v", contents["SoftwareRepoURL"])
	}
	if doc.FormatName() != "xml" {
		t.Errorf("FormatName() = %q, want %q", doc.FormatName(), "xml")
	}
}

func TestDocument_Strings(t *testing.T) {
	doc := New([]byte(headersXML))
	if err := doc.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	values, ok := doc.Strings("AdditionalHttpHeaders")
	if !ok {
		t.Fatal("Strings() ok = false")
	}
	// Integer entry is skipped, order kept
	want := []string{"X-Other: 1", "Cookie: Auth1Token=abc123;Path=/"}
	if len(values) != len(want) {
		t.Fatalf("Strings() = %v, want %v", values, want)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, values[i], want[i])
		}
	}

	if _, ok := doc.Strings("Missing"); ok {
		t.Error("Strings() on missing key should be false")
	}
	if _, ok := doc.Strings("SoftwareRepoURL"); ok {
		t.Error("Strings() on non-array should be false")
	}
}

func TestDocument_ParseMalformed(t *testing.T) {
	doc := New([]byte("<plist><dict><key>unterminated"))
	err := doc.Parse()
	if err == nil {
		t.Fatal("Parse() should fail on malformed input")
	}
	if !errors.Is(err, ErrMalformed) && !errors.Is(err, ErrNotDictionary) {
		t.Errorf("Parse() error = %v, want ErrMalformed or ErrNotDictionary", err)
	}

	if _, err := doc.Contents(); !errors.Is(err, ErrNotParsed) {
		t.Errorf("Contents() error = %v, want ErrNotParsed", err)
	}
	if doc.FormatName() != "" {
		t.Error("FormatName() should be empty before a successful parse")
	}
}

func TestDocument_ParseNotDictionary(t *testing.T) {
	data, err := Encode([]any{"a", "b"}, "xml")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if err := New(data).Parse(); !errors.Is(err, ErrNotDictionary) {
		t.Errorf("Parse() error = %v, want ErrNotDictionary", err)
	}
}

func TestToXML_Binary(t *testing.T) {
	src := map[string]any{
		"AdditionalHttpHeaders": []any{"Cookie: Auth1Token=xyz"},
	}
	bin, err := Encode(src, "binary")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(string(bin), "bplist00") {
		t.Fatalf("binary encoding missing magic: %q", bin[:8])
	}

	xml, err := ToXML(bin)
	if err != nil {
		t.Fatalf("ToXML() error = %v", err)
	}
	if !strings.Contains(string(xml), "<string>Cookie: Auth1Token=xyz</string>") {
		t.Errorf("ToXML() output missing header:\n%s", xml)
	}

	doc := New(xml)
	if err := doc.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	contents, err := doc.Contents()
	if err != nil {
		t.Fatalf("Contents() error = %v", err)
	}
	if _, ok := contents["AdditionalHttpHeaders"]; !ok {
		t.Error("round-tripped document lost AdditionalHttpHeaders")
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	if _, err := Encode(map[string]any{}, "json"); err == nil {
		t.Error("Encode() should reject unknown formats")
	}
}
