package safeint

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v SafeInt
		s string
	}{
		{Zero, "0"},
		{One, "1"},
		{New(-1), "-1"},
		{New(123456789012345), "123456789012345"},
		{Max, "9007199254740991"},
		{Min, "-9007199254740991"},
		{Undefined, "undefined"},
		{One.Div(Zero), "undefined"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.v.String())
			a.Equal("SafeInt("+test.s+")", test.v.GoString())
		})
	}
}

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		v   SafeInt
		err string
	}{
		{"0", Zero, ""},
		{" 1 ", One, ""},
		{"+2", Two, ""},
		{"-7", New(-7), ""},
		{`"123"`, New(123), ""},
		{`" -123 "`, New(-123), ""},
		{"9007199254740991", Max, ""},
		{"-9007199254740991", Min, ""},
		{"undefined", Undefined, ""},
		{` "undefined" `, Undefined, ""},

		{"", Undefined, "empty input"},
		{`"`, Undefined, "empty input"},
		{"   ", Undefined, "empty input"},
		{"+", Undefined, "empty input"},
		{"9007199254740992", Undefined, "value out of range"},
		{"-9007199254740992", Undefined, "value out of range"},
		{"1.5", Undefined, `parsing failed: strconv.ParseInt: parsing "1.5": invalid syntax`},
		{"abc", Undefined, `parsing failed: strconv.ParseInt: parsing "abc": invalid syntax`},
		{"99999999999999999999", Undefined, `parsing failed: strconv.ParseInt: parsing "99999999999999999999": value out of range`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromString(test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.v, v)
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
}

func TestMustFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(New(123), MustFromString("123"))
	a.Panics(func() {
		MustFromString("abc")
	})
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    SafeInt
		data string
	}{
		{Zero, "0"},
		{New(-123456), "-123456"},
		{Max, "9007199254740991"},
		{Min, "-9007199254740991"},
		{Undefined, "null"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			data, err := json.Marshal(test.v)
			if a.NoError(err) {
				a.Equal(test.data, string(data))
			}
			var v SafeInt
			if a.NoError(json.Unmarshal([]byte(test.data), &v)) {
				a.Equal(test.v, v)
			}
		})
	}
}

func TestJSONErrors(t *testing.T) {
	a := assert.New(t)
	for i, data := range []string{`"abc"`, `1.5`, `{}`, `9007199254740992`} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var v SafeInt
			a.Error(json.Unmarshal([]byte(data), &v))
		})
	}
}

func TestJSONQuoted(t *testing.T) {
	a := assert.New(t)
	var v SafeInt
	if a.NoError(json.Unmarshal([]byte(`"123"`), &v)) {
		a.Equal(New(123), v)
	}
}
