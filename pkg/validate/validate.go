// Package validate provides struct-tag validation for form input.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	confirmed           value must equal a sibling field named <field>_confirmation
//
// Example:
//
//	type SignupInput struct {
//	    Name     string `json:"name"     validate:"required,min=2,max=50"`
//	    Email    string `json:"email"    validate:"required,email"`
//	    Password string `json:"password" validate:"required,min=4"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := strings.Split(tag, ",")

		// If `nullable` is present and the field is empty — skip all rules.
		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			rule = strings.TrimSpace(rule)
			if rule == "" || rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value, rv); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value, parent reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}

	case "min":
		n, err := strconv.Atoi(param)
		if err != nil {
			return ""
		}
		if v.Kind() == reflect.String {
			if len([]rune(raw)) < n {
				return fmt.Sprintf("The %s must be at least %d characters.", field, n)
			}
		} else if num, ok := numeric(v); ok && num < float64(n) {
			return fmt.Sprintf("The %s must be at least %d.", field, n)
		}

	case "max":
		n, err := strconv.Atoi(param)
		if err != nil {
			return ""
		}
		if v.Kind() == reflect.String {
			if len([]rune(raw)) > n {
				return fmt.Sprintf("The %s may not be longer than %d characters.", field, n)
			}
		} else if num, ok := numeric(v); ok && num > float64(n) {
			return fmt.Sprintf("The %s may not be greater than %d.", field, n)
		}

	case "confirmed":
		base := strings.TrimSuffix(field, "_confirmation")
		sibling := findByJSONName(parent, base)
		if !sibling.IsValid() || fmt.Sprintf("%v", sibling.Interface()) != raw {
			return fmt.Sprintf("The %s confirmation does not match.", base)
		}
	}

	return ""
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == name {
			return true
		}
	}
	return false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func numeric(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// jsonFieldName returns the json tag name of a field, falling back to the
// Go field name.
func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func findByJSONName(parent reflect.Value, name string) reflect.Value {
	rt := parent.Type()
	for i := 0; i < rt.NumField(); i++ {
		if jsonFieldName(rt.Field(i)) == name {
			return parent.Field(i)
		}
	}
	return reflect.Value{}
}
