// Package converter normalizes property-list files to XML.
//
// Two implementations share the Converter interface:
//
//   - Plutil: runs /usr/bin/plutil -convert xml1 -o - <file> as a child
//     process and captures both output streams and the exit status
//   - Native: decodes the file in-process with howett.net/plist and
//     re-encodes it as XML, reporting failures the way plutil does
//
// New picks one from a mode string (auto, plutil, native).
package converter
