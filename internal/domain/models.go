package domain

import "sort"

// Option is a selectable record loaded from an options file.
// Options are handled by pointer so equality is reference equality.
type Option struct {
	ID     string
	Label  string
	Value  string
	Fields map[string]string // raw fields from the source file
}

// Field returns the named field of the option. The well-known keys
// "id", "label" and "value" map onto the struct fields when they are not
// present in Fields.
func (o *Option) Field(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	if v, ok := o.Fields[key]; ok {
		return v, true
	}
	switch key {
	case "id":
		return o.ID, o.ID != ""
	case "label":
		return o.Label, o.Label != ""
	case "value":
		return o.Value, o.Value != ""
	}
	return "", false
}

// String returns the option label, falling back to its value and id
func (o *Option) String() string {
	if o == nil {
		return ""
	}
	switch {
	case o.Label != "":
		return o.Label
	case o.Value != "":
		return o.Value
	default:
		return o.ID
	}
}

// FieldNames returns the sorted names of the raw fields
func (o *Option) FieldNames() []string {
	names := make([]string, 0, len(o.Fields))
	for name := range o.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
