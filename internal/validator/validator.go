// Package validator provides a custom Validator type for accumulating
// field-level validation errors.
package validator

// Validator holds a map of field names to their validation error messages,
// plus the order in which the fields first failed.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
	keys   []string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
		v.keys = append(v.keys, key)
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(input.Name != nil, "name", "missing name")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// First returns the field and message of the earliest recorded error.
// ok is false when the Validator is valid.
func (v *Validator) First() (key, message string, ok bool) {
	if len(v.keys) == 0 {
		return "", "", false
	}
	key = v.keys[0]
	return key, v.Errors[key], true
}

// In returns true if value is present in the list slice.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}
