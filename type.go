// File: inifile/type.go
package inifile

import (
	"reflect"
	"strconv"
)

// Scalar constrains the types the typed accessors can convert between
// stored strings and Go values.
type Scalar interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~string
}

// Get retrieves a typed value from the section. It returns the parsed value
// and true if the key exists and its stored string parses as T. A missing
// key and a stored value that fails to parse are treated the same way: the
// caller's default is returned with false, and no diagnostic is produced.
func Get[T Scalar](s *Section, key string, defaultValue T) (T, bool) {
	raw, exists := s.Get(key)
	if !exists {
		return defaultValue, false
	}
	value, ok := parseScalar[T](raw)
	if !ok {
		return defaultValue, false
	}
	return value, true
}

// Set stores a typed value in the section, formatted via strconv.
func Set[T Scalar](s *Section, key string, value T) {
	s.Set(key, formatScalar(value))
}

// SetWithDefault stores the value unless it equals defaultValue, in which
// case the key is deleted instead: configuration files omit keys equal to
// their default, minimizing diff noise.
func SetWithDefault[T Scalar](s *Section, key string, value, defaultValue T) {
	if value == defaultValue {
		s.Delete(key)
		return
	}
	Set(s, key, value)
}

// Lookup retrieves a typed value from a named section of the document. It
// returns the default with false if the section or key does not exist or
// the stored string fails to parse.
func Lookup[T Scalar](d *Document, section, key string, defaultValue T) (T, bool) {
	s, ok := d.Section(section)
	if !ok {
		return defaultValue, false
	}
	return Get(s, key, defaultValue)
}

// parseScalar converts a stored string to T. Integer parsing uses base 0 so
// hex values like "0xFF" round-trip.
func parseScalar[T Scalar](raw string) (T, bool) {
	var out T
	rv := reflect.ValueOf(&out).Elem()

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return out, false
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 0, rv.Type().Bits())
		if err != nil {
			return out, false
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 0, rv.Type().Bits())
		if err != nil {
			return out, false
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, rv.Type().Bits())
		if err != nil {
			return out, false
		}
		rv.SetFloat(f)
	default:
		return out, false
	}

	return out, true
}

// formatScalar converts a typed value to its stored string form.
func formatScalar[T Scalar](value T) string {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}

	// Unreachable for types satisfying Scalar.
	return ""
}
