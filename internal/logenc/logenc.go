// Package logenc encodes user-controlled input before it reaches log output.
package logenc

import (
	"net/url"

	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharset is the charset used by URLEncode.
const DefaultCharset = "UTF-8"

// URLEncode form-encodes s as UTF-8.
func URLEncode(s string) string {
	return EncodeForLog(s, DefaultCharset)
}

// EncodeForLog transcodes s into the named IANA charset and form-encodes
// the result. An unknown or unsupported charset, or input the charset
// cannot represent, yields s unchanged.
func EncodeForLog(s, charset string) string {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return s
	}
	encoded, err := enc.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return url.QueryEscape(encoded)
}
