// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safeint

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/avdva/safeint/unchecked"
)

const undefinedString = "undefined"

var (
	errRange = fmt.Errorf("value out of range")

	jsonNull = []byte("null")
)

// String returns the decimal representation of the value,
// or "undefined" for the undefined value.
func (s SafeInt) String() string {
	if !s.def {
		return undefinedString
	}
	return strconv.FormatInt(unchecked.Int64(s.v), 10)
}

// GoString returns debug string representation.
func (s SafeInt) GoString() string {
	return "SafeInt(" + s.String() + ")"
}

// FromString parses a decimal integer string into a SafeInt.
// Surrounding spaces and double quotes, and a leading '+', are tolerated.
// The literal "undefined" parses into the undefined value.
// Returns an error for malformed input and for integers out of range.
func FromString(s string) (SafeInt, error) {
	s, err := prepareString(s)
	if err != nil {
		return Undefined, err
	}
	if s == undefinedString {
		return Undefined, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Undefined, fmt.Errorf("parsing failed: %w", err)
	}
	v := New(n)
	if !v.def {
		return Undefined, errRange
	}
	return v, nil
}

// MustFromString parses a string into a SafeInt, panicking on error.
func MustFromString(s string) SafeInt {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// prepareString cleans the string from quotes, a '+' sign, and spaces.
func prepareString(s string) (string, error) {
	if len(s) == 0 {
		return "", fmt.Errorf("empty input")
	}
	if s[0] == '"' {
		s = s[1:]
	}
	if l := len(s); l > 0 && s[l-1] == '"' {
		s = s[:l-1]
	}
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", fmt.Errorf("empty input")
	}
	if s[0] == '+' {
		s = s[1:]
	}
	if len(s) == 0 {
		return "", fmt.Errorf("empty input")
	}
	return s, nil
}

// MarshalJSON marshals defined values as json numbers
// and the undefined value as null.
func (s SafeInt) MarshalJSON() ([]byte, error) {
	if !s.def {
		return jsonNull, nil
	}
	return []byte(s.String()), nil
}

// UnmarshalJSON unmarshals a number, a quoted number, or null into a value.
func (s *SafeInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if string(data) == "null" {
		*s = Undefined
		return nil
	}
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*s = value
	return nil
}
