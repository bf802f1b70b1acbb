// Package validation provides small conversion helpers for nullable fields.
package validation

import "time"

func StringPtr(s string) *string {
	return &s
}

// StringPtrIfNotEmpty returns a pointer to string if not empty, otherwise nil
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func BoolPtr(b bool) *bool {
	return &b
}

// GetStringOrEmpty returns the string value or an empty string if nil
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetStringOrDefault returns the string value or a default value if nil
func GetStringOrDefault(s *string, defaultValue string) string {
	if s == nil {
		return defaultValue
	}
	return *s
}

// GetIntOrDefault returns the int value or a default value if nil
func GetIntOrDefault(i *int, defaultValue int) int {
	if i == nil {
		return defaultValue
	}
	return *i
}

// GetBoolOrDefault returns the bool value or a default value if nil
func GetBoolOrDefault(b *bool, defaultValue bool) bool {
	if b == nil {
		return defaultValue
	}
	return *b
}
