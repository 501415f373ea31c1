package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldKind is the value type a field normalises to.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindBoolean FieldKind = "boolean"
)

const defaultBooleanMessage = "Please choose yes or no."

// Values is a flat record of raw form values keyed by field name. Entries are
// expected to be strings or booleans; anything else is formatted with fmt.
type Values map[string]any

// Clone returns a shallow copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// String returns the raw value for name formatted as a string.
func (v Values) String(name string) string {
	return stringValue(v[name])
}

// Bool returns the value for name as a boolean. Unparseable values are false.
func (v Values) Bool(name string) bool {
	b, _ := boolValue(v[name])
	return b
}

// Field declares how a single value is normalised and checked.
type Field struct {
	Name string
	Kind FieldKind
	// Trim strips surrounding whitespace before any rule runs.
	Trim bool
	// Normalize rewrites string values after trimming and before the rules.
	Normalize func(string) string
	// Optional fields skip their rules when the (trimmed) value is empty.
	Optional bool
	// When, if set, must report true for the field to be validated at all.
	// Inactive fields are left out of Result.Data.
	When func(Values) bool
	// Rules run in order; the first failure is the field's error.
	Rules []Rule
	// TypeMessage is reported when a boolean field holds something that is
	// not a boolean.
	TypeMessage string
}

// Active reports whether the field participates for the given values.
func (f Field) Active(values Values) bool {
	return f.When == nil || f.When(values)
}

// Check normalises the field value and applies its rules. It returns the
// normalised value and, on failure, the message of the first failing rule.
func (f Field) Check(values Values) (any, string) {
	raw := values[f.Name]
	if f.Kind == KindBoolean {
		b, ok := boolValue(raw)
		if !ok {
			msg := f.TypeMessage
			if msg == "" {
				msg = defaultBooleanMessage
			}
			return raw, msg
		}
		return b, f.firstFailure(strconv.FormatBool(b))
	}

	value := stringValue(raw)
	if f.Trim {
		value = strings.TrimSpace(value)
	}
	if f.Normalize != nil {
		value = f.Normalize(value)
	}
	if f.Optional && value == "" {
		return value, ""
	}
	return value, f.firstFailure(value)
}

func (f Field) firstFailure(value string) string {
	for _, rule := range f.Rules {
		if !rule.Check(value) {
			return rule.Message
		}
	}
	return ""
}

// Result is the outcome of validating a record. When Valid is true Data holds
// the normalised values of every active field; otherwise Errors maps field
// names to messages.
type Result struct {
	Valid  bool              `json:"valid"`
	Data   Values            `json:"data,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Schema is an ordered set of fields.
type Schema struct {
	fields []Field
	index  map[string]int
}

var errEmptyFieldName = errors.New("validation: field name is required")

// NewSchema builds a schema, rejecting empty and duplicate field names.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, errEmptyFieldName
		}
		if _, exists := s.index[name]; exists {
			return nil, fmt.Errorf("validation: duplicate field %q", name)
		}
		field.Name = name
		if field.Kind == "" {
			field.Kind = KindString
		}
		s.index[name] = len(s.fields)
		s.fields = append(s.fields, field)
	}
	return s, nil
}

// MustSchema is NewSchema for package level declarations.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the schema fields in declaration order.
func (s *Schema) Fields() []Field {
	if s == nil {
		return nil
	}
	return append([]Field(nil), s.fields...)
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	idx, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[idx], true
}

// Validate evaluates every field independently so several errors can surface
// at once.
func (s *Schema) Validate(values Values) Result {
	if s == nil {
		return Result{Valid: true, Data: Values{}}
	}

	data := make(Values, len(s.fields))
	errs := make(map[string]string)
	for _, field := range s.fields {
		if !field.Active(values) {
			continue
		}
		value, msg := field.Check(values)
		if msg != "" {
			errs[field.Name] = msg
			continue
		}
		data[field.Name] = value
	}

	if len(errs) > 0 {
		return Result{Valid: false, Errors: errs}
	}
	return Result{Valid: true, Data: data}
}

// ValidateField checks a single field against values. Unknown and inactive
// fields are reported as valid.
func (s *Schema) ValidateField(name string, values Values) (string, bool) {
	field, ok := s.Field(name)
	if !ok || !field.Active(values) {
		return "", true
	}
	_, msg := field.Check(values)
	return msg, msg == ""
}

func stringValue(raw any) string {
	switch typed := raw.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

func boolValue(raw any) (bool, bool) {
	switch typed := raw.(type) {
	case nil:
		return false, true
	case bool:
		return typed, true
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "on":
			return true, true
		case "", "false", "off":
			return false, true
		}
	}
	return false, false
}
