package domain

import (
	"fmt"
	"reflect"
	"strings"
)

// LabelKey selects how a display label is derived from an option.
// The zero value and SelfLabel treat the option itself as its label.
type LabelKey string

const (
	// SelfLabel uses the option value as its own label
	SelfLabel LabelKey = "."
	// DefaultLabelKey is the field used when no key is configured
	DefaultLabelKey LabelKey = "label"
)

// IsSelf reports whether the key means "the option is its own label"
func (k LabelKey) IsSelf() bool {
	return k == "" || k == SelfLabel
}

// Labeler is implemented by options that expose named fields directly
type Labeler interface {
	Field(key string) (string, bool)
}

// LabelFunc derives the display label of an option
type LabelFunc[T any] func(T) string

// LabelFor returns the label resolver for key.
func LabelFor[T any](key LabelKey) LabelFunc[T] {
	return func(opt T) string {
		return ResolveLabel(opt, key)
	}
}

// ResolveLabel derives the display label of opt.
//
// Strings are always their own label. Otherwise the key is looked up through
// Labeler, then struct fields (exact name, case-insensitive name, then
// json/toml/yaml tags), then string-keyed maps. Anything left over falls
// back to fmt.Stringer and finally fmt.Sprint.
func ResolveLabel(opt any, key LabelKey) string {
	if opt == nil {
		return ""
	}
	if s, ok := opt.(string); ok {
		return s
	}
	if !key.IsSelf() {
		if l, ok := opt.(Labeler); ok {
			if v, found := l.Field(string(key)); found {
				return v
			}
		}
		if v, ok := lookupField(reflect.ValueOf(opt), string(key)); ok {
			return v
		}
	}
	if s, ok := opt.(fmt.Stringer); ok {
		return s.String()
	}
	v := reflect.ValueOf(opt)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.String {
		return v.String()
	}
	return fmt.Sprint(opt)
}

func lookupField(v reflect.Value, key string) (string, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		if f, ok := t.FieldByName(key); ok && f.IsExported() {
			return stringify(v.FieldByIndex(f.Index))
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if strings.EqualFold(f.Name, key) || tagName(f, "json") == key ||
				tagName(f, "toml") == key || tagName(f, "yaml") == key {
				return stringify(v.Field(i))
			}
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return "", false
		}
		mv := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if mv.IsValid() {
			return stringify(mv)
		}
	}
	return "", false
}

func tagName(f reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
	return name
}

func stringify(v reflect.Value) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	if v.CanInterface() {
		return fmt.Sprint(v.Interface()), true
	}
	return "", false
}
