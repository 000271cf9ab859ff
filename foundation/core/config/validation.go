// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule based validation for configuration values
//              including type checking, range validation, required fields,
//              and pattern matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-16 v0.2.0: Validation no longer mutates the configuration; sorted error output

package config

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool        // Whether the field is required
	Type     string      // Expected type: "string", "int", "bool", "float", "[]string"
	Min      interface{} // Minimum value (for numbers) or length (for strings/slices)
	Max      interface{} // Maximum value (for numbers) or length (for strings/slices)
	Pattern  string      // Regex pattern for string validation
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Error joins all validation errors into one message
func (r *ValidationResult) Error() string {
	return strings.Join(r.Errors, "; ")
}

// Validate validates the configuration against the provided rules
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := validateField(key, c.getValue(key), rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func validateField(key string, value interface{}, rule ValidationRule) error {
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if rule.Min != nil {
		if err := validateMin(key, value, rule.Min); err != nil {
			return err
		}
	}
	if rule.Max != nil {
		if err := validateMax(key, value, rule.Max); err != nil {
			return err
		}
	}

	if rule.Pattern != "" {
		return validatePattern(key, value, rule.Pattern)
	}

	return nil
}

// validateType validates the type of a configuration value
func validateType(key string, value interface{}, expectedType string) error {
	kind := reflect.TypeOf(value).Kind()

	switch expectedType {
	case "string":
		if kind != reflect.String {
			return fmt.Errorf("field '%s' must be a string, got %s", key, kind)
		}

	case "int":
		switch kind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		case reflect.Float64:
			if f := value.(float64); f != float64(int64(f)) {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %s", key, kind)
		}

	case "float":
		switch kind {
		case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return fmt.Errorf("field '%s' must be a float, got %s", key, kind)
		}

	case "bool":
		if kind != reflect.Bool {
			return fmt.Errorf("field '%s' must be a boolean, got %s", key, kind)
		}

	case "[]string":
		switch v := value.(type) {
		case []string:
		case []interface{}:
			for _, item := range v {
				if _, ok := item.(string); !ok {
					return fmt.Errorf("field '%s' must be a slice of strings", key)
				}
			}
		default:
			return fmt.Errorf("field '%s' must be a slice of strings, got %s", key, kind)
		}

	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}

	return nil
}

func numeric(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func length(v interface{}) (int, bool) {
	switch val := v.(type) {
	case string:
		return len(val), true
	case []string:
		return len(val), true
	case []interface{}:
		return len(val), true
	}
	return 0, false
}

// validateMin validates minimum values or lengths
func validateMin(key string, value, min interface{}) error {
	if n, ok := numeric(value); ok {
		if m, ok := numeric(min); ok && n < m {
			return fmt.Errorf("field '%s' value %v is less than minimum %v", key, value, min)
		}
		return nil
	}
	if l, ok := length(value); ok {
		if m, ok := min.(int); ok && l < m {
			return fmt.Errorf("field '%s' length %d is less than minimum %d", key, l, m)
		}
	}
	return nil
}

// validateMax validates maximum values or lengths
func validateMax(key string, value, max interface{}) error {
	if n, ok := numeric(value); ok {
		if m, ok := numeric(max); ok && n > m {
			return fmt.Errorf("field '%s' value %v is greater than maximum %v", key, value, max)
		}
		return nil
	}
	if l, ok := length(value); ok {
		if m, ok := max.(int); ok && l > m {
			return fmt.Errorf("field '%s' length %d is greater than maximum %d", key, l, m)
		}
	}
	return nil
}

// validatePattern validates string values against regex patterns
func validatePattern(key string, value interface{}, pattern string) error {
	strValue, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' pattern validation requires string value", key)
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
	}

	if !regex.MatchString(strValue) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, strValue, pattern)
	}

	return nil
}
