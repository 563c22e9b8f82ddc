package signer

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// encodeBytes encodes data using base64url with the trailing padding
// stripped, keeping tokens free of "=" characters.
func encodeBytes(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

// decodeBytes restores the stripped padding before decoding, so segments
// from both padded and padding-free producers decode.
func decodeBytes(value string) ([]byte, error) {
	if m := len(value) % 4; m != 0 {
		value += strings.Repeat("=", 4-m)
	}
	data, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return data, nil
}

// encodeInt renders a timestamp as 8 raw bytes in the signer's byte order.
func (s *Signer) encodeInt(value uint64) string {
	var buf [timestampSize]byte
	s.byteOrder.PutUint64(buf[:], value)
	return encodeBytes(buf[:])
}

func (s *Signer) decodeInt(value string) (uint64, error) {
	data, err := decodeBytes(value)
	if err != nil {
		return 0, err
	}
	if len(data) != timestampSize {
		return 0, errors.Join(ErrDecode,
			fmt.Errorf("timestamp must be %d bytes, got %d", timestampSize, len(data)))
	}
	return s.byteOrder.Uint64(data), nil
}

func encodeValue(value string) string {
	return encodeBytes([]byte(value))
}

func decodeValue(value string) (string, error) {
	data, err := decodeBytes(value)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.Join(ErrDecode, errors.New("value is not valid UTF-8"))
	}
	return string(data), nil
}
