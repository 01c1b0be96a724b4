/*
schema contains the wire types for the chat completion and image generation
endpoints: messages, option enumerations, tools, request builders and
response payloads.
*/
package schema

import (
	// Packages
	openai "github.com/mutablelogic/go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// enum maps each value of a closed enumeration to its wire string. The value
// is the index into the slice, so the zero value is always the first entry.
type enum[T ~uint] []string

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (e enum[T]) valid(v T) bool {
	return uint(v) < uint(len(e))
}

func (e enum[T]) string(v T) string {
	if !e.valid(v) {
		return "unknown"
	}
	return e[v]
}

func (e enum[T]) text(v T) ([]byte, error) {
	if !e.valid(v) {
		return nil, openai.ErrBadParameter.Withf("invalid value %d", uint(v))
	}
	return []byte(e[v]), nil
}

func (e enum[T]) parse(s string) (T, error) {
	for i, w := range e {
		if w == s {
			return T(i), nil
		}
	}
	return 0, openai.ErrBadParameter.Withf("unknown value %q", s)
}
