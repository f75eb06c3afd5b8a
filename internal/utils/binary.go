package utils

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when file content cannot be decoded as UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// DecodeText returns data as a string when it is valid UTF-8. A leading byte
// order mark is dropped.
func DecodeText(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}
