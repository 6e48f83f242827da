package errors

import (
	"fmt"
	"slices"
	"strings"
)

const validationMetaKey = "validation_errors"

// ValidationBuilder collects per-field problems with a request. Build returns nil
// when nothing was recorded, otherwise one InvalidArgument error whose meta holds
// every field under "validation_errors".
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted problem with field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing value
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a value that is present but unusable
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// HasErrors reports whether any field has been recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns nil or the collected InvalidArgument error
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}
	return InvalidArgument(vb.message()).WithMeta(validationMetaKey, vb.fields)
}

// message lists fields alphabetically so the text is stable across runs
func (vb *ValidationBuilder) message() string {
	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + strings.Join(vb.fields[name], ", ")
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateRequired records field when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange records field when value falls outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum records field when value is not one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if slices.Contains(allowed, value) {
		return
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
