// Package plist parses Apple property-list documents.
//
// It is a thin layer over howett.net/plist that exposes a document with
// a two-step contract: Parse the raw bytes, then read Contents as a
// key-value mapping. XML, binary and OpenStep encodings are accepted.
//
// ToXML re-encodes any supported encoding as an XML plist, which is what
// the in-process converter emits on hosts without plutil.
package plist
