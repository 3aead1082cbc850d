package prime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Value is the closed set of types allowed in canonical serialization.
// A sealed interface keeps content-addressed identity computations from
// ever seeing a type with ambiguous encoding.
type Value interface {
	isValue()
}

// VString is a canonical string value (NFC normalized at serialization).
type VString string

// VInt is a canonical integer value.
type VInt int64

// VBool is a canonical boolean value.
type VBool bool

// VFloat is a canonical float64 value, encoded as its IEEE-754 bit pattern.
type VFloat float64

// VArray is a canonical ordered sequence.
type VArray []Value

// VObject is a canonical object with UTF-16 sorted keys.
type VObject map[string]Value

func (VString) isValue() {}
func (VInt) isValue()    {}
func (VBool) isValue()   {}
func (VFloat) isValue()  {}
func (VArray) isValue()  {}
func (VObject) isValue() {}

// MarshalCanonical produces canonical JSON for hashing.
// CRITICAL: this is the ONLY serialization used for content-addressed
// identity computation.
//
// Key properties, following RFC 8785 where it applies:
//  1. Object keys sorted by UTF-16 code units (not UTF-8 bytes)
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized
//  4. float64 is encoded as the string "f:<16 hex digits>" of its IEEE-754
//     bit pattern, so identity is bit-exact and never depends on decimal
//     float formatting
//  5. No null: absent is absent, never null
func MarshalCanonical(v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is forbidden in canonical JSON")
	case VString:
		return marshalCanonicalString(string(val))
	case VInt:
		return []byte(fmt.Sprintf("%d", val)), nil
	case VBool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case VFloat:
		return marshalCanonicalString(FormatFloatBits(float64(val)))
	case VArray:
		return marshalCanonicalArray(val)
	case VObject:
		return marshalCanonicalObject(val)
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

// FormatFloatBits returns the canonical encoding of a float64: the string
// "f:" followed by 16 lowercase hex digits of the IEEE-754 bit pattern.
// This is the documented wire form for every float the module hashes.
func FormatFloatBits(f float64) string {
	return fmt.Sprintf("f:%016x", math.Float64bits(f))
}

// marshalCanonicalString produces a canonical JSON string with NFC
// normalization and HTML escaping disabled (RFC 8785: <, >, & are NOT
// escaped; only control characters, backslash, and quote are).
func marshalCanonicalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// Encoder appends a trailing newline; strip it.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func marshalCanonicalArray(arr VArray) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := MarshalCanonical(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalCanonicalObject(obj VObject) ([]byte, error) {
	keys := sortedKeysUTF16(obj)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalCanonicalString(k)
		if err != nil {
			return nil, fmt.Errorf("object key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := MarshalCanonical(obj[k])
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// sortedKeysUTF16 returns object keys sorted by UTF-16 code units
// per RFC 8785. For keys outside the BMP this differs from byte order.
func sortedKeysUTF16(obj VObject) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return lessUTF16(keys[i], keys[j])
	})
	return keys
}

func lessUTF16(a, b string) bool {
	au, bu := encodeUTF16(a), encodeUTF16(b)
	for i := 0; i < len(au) && i < len(bu); i++ {
		if au[i] != bu[i] {
			return au[i] < bu[i]
		}
	}
	return len(au) < len(bu)
}

func encodeUTF16(s string) []uint16 {
	var out []uint16
	for _, r := range s {
		if r < 0x10000 {
			out = append(out, uint16(r))
			continue
		}
		// surrogate pair
		r -= 0x10000
		out = append(out, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
	}
	return out
}
