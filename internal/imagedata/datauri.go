// Package imagedata decodes browser-captured data URIs into raw image bytes.
package imagedata

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidDataURI is returned when the input is not a well-formed data URI.
var ErrInvalidDataURI = errors.New("invalid data URI")

// ParseDataURI decodes a data URI (e.g. "data:image/jpeg;base64,...") into
// its media type and raw bytes. Non-base64 payloads are percent-decoded by
// the browser before submission, so only base64 is accepted here.
func ParseDataURI(uri string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	params := strings.Split(meta, ";")
	mediaType = params[0]
	if mediaType == "" {
		mediaType = "text/plain"
	}

	isBase64 := false
	for _, p := range params[1:] {
		if p == "base64" {
			isBase64 = true
		}
	}
	if !isBase64 {
		return "", nil, ErrInvalidDataURI
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidDataURI
	}
	return mediaType, data, nil
}
