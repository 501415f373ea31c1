package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	RuleRequired    = "required"
	RulePattern     = "pattern"
	RuleMinLength   = "minLength"
	RuleMaxLength   = "maxLength"
	RuleExactLength = "exactLength"
	RuleOneOf       = "oneOf"
	RuleDate        = "date"
)

// Rule is a single constraint applied to a field value. Length rules encode
// their threshold in Params["value"], pattern rules keep the expression in
// Params["pattern"] and enum rules keep a comma separated list in
// Params["values"]. Message is what the user sees when the rule fails.
type Rule struct {
	Kind    string            `json:"kind"`
	Params  map[string]string `json:"params,omitempty"`
	Message string            `json:"message"`

	pattern *regexp.Regexp
	length  int
	values  []string
}

// Required rejects empty values.
func Required(msg string) Rule {
	return Rule{Kind: RuleRequired, Message: msg}
}

// Pattern rejects values that do not match expr. It panics when expr does not
// compile, the same way regexp.MustCompile does, since schemas are declared
// at package init.
func Pattern(expr, msg string) Rule {
	return Rule{
		Kind:    RulePattern,
		Params:  map[string]string{"pattern": expr},
		Message: msg,
		pattern: regexp.MustCompile(expr),
	}
}

// MinLength rejects values shorter than n runes.
func MinLength(n int, msg string) Rule {
	return lengthRule(RuleMinLength, n, msg)
}

// MaxLength rejects values longer than n runes.
func MaxLength(n int, msg string) Rule {
	return lengthRule(RuleMaxLength, n, msg)
}

// ExactLength rejects values that are not exactly n runes long.
func ExactLength(n int, msg string) Rule {
	return lengthRule(RuleExactLength, n, msg)
}

// OneOf rejects values outside the supplied set. Comparison is exact.
func OneOf(values []string, msg string) Rule {
	return Rule{
		Kind:    RuleOneOf,
		Params:  map[string]string{"values": strings.Join(values, ",")},
		Message: msg,
		values:  append([]string(nil), values...),
	}
}

// Date rejects values that do not parse as a calendar date in layout, so
// "2026-13-45" fails a "2006-01-02" rule even though its shape matches.
func Date(layout, msg string) Rule {
	return Rule{
		Kind:    RuleDate,
		Params:  map[string]string{"layout": layout},
		Message: msg,
	}
}

func lengthRule(kind string, n int, msg string) Rule {
	if n < 0 {
		n = 0
	}
	return Rule{
		Kind:    kind,
		Params:  map[string]string{"value": strconv.Itoa(n)},
		Message: msg,
		length:  n,
	}
}

// Check reports whether value satisfies the rule.
func (r Rule) Check(value string) bool {
	switch r.Kind {
	case RuleRequired:
		return value != ""
	case RulePattern:
		if r.pattern == nil {
			return true
		}
		return r.pattern.MatchString(value)
	case RuleMinLength:
		return utf8.RuneCountInString(value) >= r.length
	case RuleMaxLength:
		return utf8.RuneCountInString(value) <= r.length
	case RuleExactLength:
		return utf8.RuneCountInString(value) == r.length
	case RuleOneOf:
		return slices.Contains(r.values, value)
	case RuleDate:
		layout := r.Params["layout"]
		if layout == "" {
			return true
		}
		_, err := time.Parse(layout, value)
		return err == nil
	default:
		return true
	}
}

func (r Rule) String() string {
	switch r.Kind {
	case RulePattern:
		return fmt.Sprintf("%s(%s)", r.Kind, r.Params["pattern"])
	case RuleMinLength, RuleMaxLength, RuleExactLength:
		return fmt.Sprintf("%s(%d)", r.Kind, r.length)
	case RuleOneOf:
		return fmt.Sprintf("%s(%s)", r.Kind, r.Params["values"])
	case RuleDate:
		return fmt.Sprintf("%s(%s)", r.Kind, r.Params["layout"])
	default:
		return r.Kind
	}
}
