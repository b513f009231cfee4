package dataset

import (
	"encoding/json"
	"strconv"
)

// KeyKind distinguishes string keys from number keys.
type KeyKind uint8

const (
	// KeyString is a key held in a JSON string.
	KeyString KeyKind = iota + 1
	// KeyNumber is a key held in a JSON number.
	KeyNumber
)

// String returns the kind name.
func (k KeyKind) String() string {
	switch k {
	case KeyString:
		return "string"
	case KeyNumber:
		return "number"
	default:
		return "invalid"
	}
}

// Key identifies a record. Keys are comparable and usable as map keys.
// The string "1" and the number 1 are different keys; numbers compare by
// their literal JSON text.
type Key struct {
	kind KeyKind
	text string
}

// StringKey returns a string key.
func StringKey(s string) Key {
	return Key{kind: KeyString, text: s}
}

// NumberKey returns a number key for the given JSON number literal.
func NumberKey(literal string) Key {
	return Key{kind: KeyNumber, text: literal}
}

// Kind returns the JSON type of the key.
func (k Key) Kind() KeyKind {
	return k.kind
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.kind == 0
}

// String returns the key's text: the decoded string or the number literal.
func (k Key) String() string {
	return k.text
}

// JSON returns the key as it appears in JSON, quoting string keys.
func (k Key) JSON() string {
	if k.kind == KeyString {
		b, err := json.Marshal(k.text)
		if err != nil {
			return strconv.Quote(k.text)
		}
		return string(b)
	}
	return k.text
}
