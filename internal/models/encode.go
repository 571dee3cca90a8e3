package models

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Marshal returns the canonical JSON text of v: no insignificant whitespace,
// object members in insertion order, scalars written the way ECMAScript's
// JSON.stringify writes them.
func Marshal(v Value) []byte {
	return AppendJSON(nil, v)
}

// AppendJSON appends the canonical JSON text of v to dst.
func AppendJSON(dst []byte, v Value) []byte {
	switch node := v.(type) {
	case Array:
		dst = append(dst, '[')
		for i, child := range node {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, child)
		}
		return append(dst, ']')
	case *Object:
		dst = append(dst, '{')
		for i, m := range node.Members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendString(dst, m.Key)
			dst = append(dst, ':')
			dst = AppendJSON(dst, m.Value)
		}
		return append(dst, '}')
	default:
		return AppendScalar(dst, v)
	}
}

// AppendScalar appends the canonical encoding of a scalar value. Containers
// are encoded as null; use AppendJSON for them.
func AppendScalar(dst []byte, v Value) []byte {
	switch node := v.(type) {
	case Bool:
		if node {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number:
		return AppendNumber(dst, float64(node))
	case String:
		return AppendString(dst, string(node))
	default:
		return append(dst, "null"...)
	}
}

// AppendNumber appends f in ECMAScript Number-to-string form: the shortest
// round-tripping digits, plain notation for 1e-6 <= |f| < 1e21 and an
// unpadded exponent otherwise. NaN and the infinities are written as null,
// negative zero as 0.
func AppendNumber(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	if f == 0 {
		return append(dst, '0')
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.AppendFloat(dst, f, 'f', -1, 64)
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'e', -1, 64)
	// strconv pads the exponent to two digits: 1e-07 becomes 1e-7.
	for i := len(dst) - 1; i > start; i-- {
		if dst[i] == '+' || dst[i] == '-' {
			if dst[i+1] == '0' && i+2 < len(dst) {
				dst = append(dst[:i+1], dst[i+2:]...)
			}
			break
		}
	}
	return dst
}

const hexDigits = "0123456789abcdef"

// AppendString appends s as a JSON string literal. Only the quote, the
// backslash and C0 control characters are escaped; everything else,
// including <, >, & and U+2028/U+2029, is written raw. Invalid UTF-8 is
// written as U+FFFD.
func AppendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				dst = append(dst, '\\', c)
			case c == '\b':
				dst = append(dst, '\\', 'b')
			case c == '\f':
				dst = append(dst, '\\', 'f')
			case c == '\n':
				dst = append(dst, '\\', 'n')
			case c == '\r':
				dst = append(dst, '\\', 'r')
			case c == '\t':
				dst = append(dst, '\\', 't')
			case c < 0x20:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			default:
				dst = append(dst, c)
			}
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = utf8.AppendRune(dst, utf8.RuneError)
		} else {
			dst = append(dst, s[i:i+size]...)
		}
		i += size
	}
	return append(dst, '"')
}

// KeyListLen returns the encoded length of keys as a JSON array of strings.
func KeyListLen(keys []string) int {
	n := 2 + max(len(keys), 1) - 1
	var buf []byte
	for _, key := range keys {
		buf = AppendString(buf[:0], key)
		n += len(buf)
	}
	return n
}
