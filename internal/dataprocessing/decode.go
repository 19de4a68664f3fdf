package dataprocessing

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"outagecli/pkg/contracts/domain"
)

// DecodeContent converts raw schedule bytes to UTF-8 text. Exported
// schedules are normally EUC-KR, so that is tried first, accepting only
// byte streams that structurally conform to EUC-KR (the x/text codec is
// the permissive CP949 superset, which would happily mangle UTF-8 input).
// Valid UTF-8 passes through unchanged. The last resort decodes as CP949
// with lossy substitution, so decoding always yields text.
func DecodeContent(raw []byte) (string, error) {
	if isStrictEUCKR(raw) {
		if text, err := decodeKorean(raw); err == nil {
			return text, nil
		}
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	text, err := decodeKorean(raw)
	if err != nil {
		return "", domain.ErrDecodeFailed
	}
	return text, nil
}

// isStrictEUCKR reports whether raw consists only of ASCII bytes and
// well-formed EUC-KR double-byte sequences (lead and trail in 0xA1-0xFE).
func isStrictEUCKR(raw []byte) bool {
	for i := 0; i < len(raw); {
		b := raw[i]
		switch {
		case b < 0x80:
			i++
		case b >= 0xA1 && b <= 0xFE:
			if i+1 >= len(raw) {
				return false
			}
			trail := raw[i+1]
			if trail < 0xA1 || trail > 0xFE {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}

// decodeKorean decodes EUC-KR/CP949 bytes, substituting unmappable
// sequences with the Unicode replacement rune.
func decodeKorean(raw []byte) (string, error) {
	out, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
