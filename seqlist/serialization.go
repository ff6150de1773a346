// Package seqlist: JSON serialization and deserialization for List.
//
// This file extends List with methods to convert to and from JSON format,
// implementing the container.JSONCodec interface.
package seqlist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tunococ/ostree/container"
	"github.com/tunococ/ostree/strategy"
	"github.com/tunococ/ostree/strategy/baseline"
)

// --------------------------------------------------------------------------------
// Constants and Errors

var (
	// ErrMarshalJSON indicates a failure during JSON marshaling.
	ErrMarshalJSON = errors.New("failed to marshal list to JSON")
	// ErrInvalidJSON indicates the provided JSON data is invalid.
	ErrInvalidJSON = errors.New("invalid JSON data")
)

// --------------------------------------------------------------------------------
// Interface Assertions

// Verify List satisfies the shared container contracts at compile time,
// instantiated with the baseline strategy (any Policy would do; the
// interfaces in package container don't depend on which one).
var (
	_ container.Container[int]  = (*List[int, baseline.Strategy[int]])(nil)
	_ container.JSONCodec       = (*List[int, baseline.Strategy[int]])(nil)
	_ json.Marshaler            = (*List[int, baseline.Strategy[int]])(nil)
	_ json.Unmarshaler          = (*List[int, baseline.Strategy[int]])(nil)
	_ strategy.Policy[int]      = baseline.Strategy[int]{}
)

// --------------------------------------------------------------------------------
// JSON Serialization Methods

// MarshalJSON serializes the list's elements into a JSON array, in ordinal
// order.
func (l *List[T, S]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(l.Values())
	if err != nil {
		return nil, fmt.Errorf("seqlist: %w: %w", ErrMarshalJSON, err)
	}
	return data, nil
}

// UnmarshalJSON replaces the list's contents with the elements decoded from
// a JSON array. The data is decoded before the list is touched: a decode
// failure returns an error and leaves the list unchanged, never partially
// populated.
func (l *List[T, S]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("seqlist: %w: %w", ErrInvalidJSON, err)
	}
	l.Assign(values)
	return nil
}
