package config

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer maps raw string inputs onto a typed enum value, tolerating
// casing and surrounding whitespace. Unknown inputs fall back to a default
// or surface a validation error depending on the call site.
type Normalizer[T comparable] struct {
	values       map[string]T
	defaultValue T
}

// NewNormalizer creates a normalizer from lowercase key to value.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	return &Normalizer[T]{values: values, defaultValue: defaultValue}
}

func cleanKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Normalize converts raw input to the enum value, returning the default for
// unknown or empty input.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[cleanKey(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// NormalizeWithError converts raw input to the enum value, returning an
// error for unknown input. Empty input maps to the default without error.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	key := cleanKey(raw)
	if key == "" {
		return n.defaultValue, nil
	}
	if v, ok := n.values[key]; ok {
		return v, nil
	}
	return n.defaultValue, fmt.Errorf("unknown value %q (valid: %s)", raw, strings.Join(n.ValidKeys(), ", "))
}

// ValidKeys returns the sorted set of accepted inputs.
func (n *Normalizer[T]) ValidKeys() []string {
	keys := make([]string, 0, len(n.values))
	for k := range n.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
