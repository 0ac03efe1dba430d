// Package cursor encodes pagination positions as opaque, URL-safe tokens.
//
// A cursor is a zero-based offset into the last ranked result list for a
// filter combination. It is not a database key: when the underlying list
// changes shape the offset silently points elsewhere, and callers are
// expected to tolerate the shift.
package cursor

import (
	"encoding/base64"
	"strconv"
)

// Encode converts a non-negative offset into an opaque token.
func Encode(offset int) string {
	if offset < 0 {
		offset = 0
	}
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// Decode converts a token back into an offset. Any malformed, non-numeric or
// negative input decodes to 0; this function never fails.
func Decode(token string) int {
	if token == "" {
		return 0
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		// Tolerate padded tokens produced by other encoders.
		raw, err = base64.URLEncoding.DecodeString(token)
		if err != nil {
			return 0
		}
	}

	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
