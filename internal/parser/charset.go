package parser

import (
	"io"
	"mime"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader converts body to UTF-8 when contentType names a charset
// (e.g. "application/json; charset=ISO-8859-1").
//
// Without a charset parameter the body is returned as-is: JSON is UTF-8, and
// content sniffing would read an ASCII prefix as windows-1252.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["charset"] == "" {
		return body, nil
	}
	return charset.NewReader(body, contentType)
}
