// FILE: inifile/decode.go
package inifile

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the entries of a named section into the target struct or
// map. The target must be a non-nil pointer. Fields are matched via the
// "ini" struct tag (falling back to the field name); stored strings are
// weakly converted to the field types, with hooks for time.Duration and
// comma-separated slices.
//
// Dotted keys ("db.host") are expanded into nested maps so structs written
// by SetStruct scan back symmetrically. A missing section decodes as empty,
// leaving the target untouched.
func (d *Document) Scan(section string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	data := make(map[string]any)
	if s, ok := d.Section(section); ok {
		for _, key := range s.Keys() {
			value, _ := s.Get(key)
			setNestedValue(data, key, value)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "ini",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", section, target, err)
	}

	return nil
}

// SetStruct writes the exported fields of a struct into a named section,
// creating it if needed. Field keys come from the "ini" tag or the field
// name; a tag of "-" skips the field. Nested structs flatten into dotted
// keys ("db.host"). Field values must be Scalar-convertible, time.Duration,
// or string slices (joined with ",").
func (d *Document) SetStruct(section string, source any) error {
	v := reflect.ValueOf(source)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("SetStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("SetStruct requires a struct or struct pointer, got %T", source)
	}

	s := d.GetOrCreateSection(section)

	var failed []string
	setStructFields(s, v, "", &failed)

	if len(failed) > 0 {
		return fmt.Errorf("failed to store %d field(s): %s", len(failed), strings.Join(failed, "; "))
	}
	return nil
}

// setStructFields handles the recursive field walk for SetStruct.
func setStructFields(s *Section, v reflect.Value, prefix string, failed *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("ini")
		if tag == "-" {
			continue
		}

		key := field.Name
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				key = parts[0]
			}
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		// Nested structs flatten into dotted keys.
		if fieldValue.Kind() == reflect.Struct && fieldValue.Type() != reflect.TypeOf(time.Time{}) {
			setStructFields(s, fieldValue, key, failed)
			continue
		}

		str, err := formatFieldValue(fieldValue)
		if err != nil {
			*failed = append(*failed, fmt.Sprintf("field %s: %v", key, err))
			continue
		}
		s.Set(key, str)
	}
}

// formatFieldValue converts a struct field value to its stored string form.
func formatFieldValue(v reflect.Value) (string, error) {
	if d, ok := v.Interface().(time.Duration); ok {
		return d.String(), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return formatScalar(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return formatScalar(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return formatScalar(v.Uint()), nil
	case reflect.Float32:
		return formatScalar(float32(v.Float())), nil
	case reflect.Float64:
		return formatScalar(v.Float()), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return "", fmt.Errorf("unsupported slice type %s", v.Type())
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = v.Index(i).String()
		}
		return strings.Join(parts, ","), nil
	}

	return "", fmt.Errorf("unsupported type %s", v.Type())
}
