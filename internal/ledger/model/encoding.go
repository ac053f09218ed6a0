package model

import (
	"encoding/base64"
	"strings"
)

// DecodeBase64URL decodes the url-safe base64 used by the ledger for tags, owners and data.
// Padded and standard-alphabet inputs are accepted as well.
func DecodeBase64URL(s string) ([]byte, error) {
	trimmed := strings.TrimRight(s, "=")
	b, err := base64.RawURLEncoding.DecodeString(trimmed)
	if err == nil {
		return b, nil
	}
	if std, stdErr := base64.RawStdEncoding.DecodeString(trimmed); stdErr == nil {
		return std, nil
	}
	return nil, err
}

// EncodeBase64URL encodes b without padding.
func EncodeBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
