// Package main provides the entry point for simianauth.
//
// Usage:
//
//	simianauth --server simian.example.com --pkcs12 id.p12 login
//	simianauth --token /Library/Preferences/ManagedInstalls.plist logout
//	simianauth -q token resolve ManagedInstalls.plist
//
// The --token value is either the token itself or a plist file whose
// AdditionalHttpHeaders list carries it as a "Cookie: Auth1Token=..." line.
package main
