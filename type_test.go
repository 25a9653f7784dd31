// FILE: inifile/type_test.go
package inifile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedGet(t *testing.T) {
	s := newSection("Core")
	s.Set("bool", "true")
	s.Set("int", "42")
	s.Set("hex", "0xFF")
	s.Set("negative", "-7")
	s.Set("float", "2.5")
	s.Set("string", "hello")
	s.Set("garbage", "not-a-number")

	t.Run("Bool", func(t *testing.T) {
		v, ok := Get(s, "bool", false)
		assert.True(t, ok)
		assert.True(t, v)
	})

	t.Run("Int", func(t *testing.T) {
		v, ok := Get(s, "int", 0)
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("HexInt", func(t *testing.T) {
		v, ok := Get(s, "hex", uint32(0))
		assert.True(t, ok)
		assert.Equal(t, uint32(0xFF), v)
	})

	t.Run("NegativeInt", func(t *testing.T) {
		v, ok := Get(s, "negative", int64(0))
		assert.True(t, ok)
		assert.Equal(t, int64(-7), v)
	})

	t.Run("Float", func(t *testing.T) {
		v, ok := Get(s, "float", 0.0)
		assert.True(t, ok)
		assert.Equal(t, 2.5, v)
	})

	t.Run("String", func(t *testing.T) {
		v, ok := Get(s, "string", "")
		assert.True(t, ok)
		assert.Equal(t, "hello", v)
	})

	t.Run("MissingKeyReturnsDefault", func(t *testing.T) {
		v, ok := Get(s, "absent", 99)
		assert.False(t, ok)
		assert.Equal(t, 99, v)
	})

	t.Run("ParseFailureReturnsDefault", func(t *testing.T) {
		// A key that exists but fails to parse behaves like a missing key.
		v, ok := Get(s, "garbage", 13)
		assert.False(t, ok)
		assert.Equal(t, 13, v)
	})

	t.Run("IntOverflowReturnsDefault", func(t *testing.T) {
		s.Set("big", "300")
		v, ok := Get(s, "big", int8(1))
		assert.False(t, ok)
		assert.Equal(t, int8(1), v)
	})
}

func TestTypedSet(t *testing.T) {
	s := newSection("Core")

	Set(s, "bool", true)
	Set(s, "int", -42)
	Set(s, "uint", uint64(18446744073709551615))
	Set(s, "float", 1.25)
	Set(s, "string", "value")

	for key, want := range map[string]string{
		"bool":   "true",
		"int":    "-42",
		"uint":   "18446744073709551615",
		"float":  "1.25",
		"string": "value",
	} {
		got, ok := s.Get(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestSetWithDefault(t *testing.T) {
	t.Run("EqualToDefaultOmitsKey", func(t *testing.T) {
		s := newSection("Core")
		SetWithDefault(s, "k", 5, 5)
		assert.False(t, s.Exists("k"))
	})

	t.Run("EqualToDefaultDeletesExisting", func(t *testing.T) {
		s := newSection("Core")
		Set(s, "k", 7)
		SetWithDefault(s, "k", 5, 5)
		assert.False(t, s.Exists("k"))
	})

	t.Run("DifferentFromDefaultStores", func(t *testing.T) {
		s := newSection("Core")
		SetWithDefault(s, "k", 5, 0)
		v, ok := Get(s, "k", 0)
		assert.True(t, ok)
		assert.Equal(t, 5, v)
	})
}

func TestLookup(t *testing.T) {
	doc := parseString(t, "[Core]\nLanguage = 6\n", false, nil)

	v, ok := Lookup(doc, "Core", "language", 0)
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	v, ok = Lookup(doc, "Missing", "language", 3)
	assert.False(t, ok)
	assert.Equal(t, 3, v)
}
