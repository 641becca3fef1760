// SPDX-License-Identifier: MIT
package flattree

import (
	"errors"
	"fmt"
	"reflect"
)

type (
	// Record is a flat, field-name addressed record, e.g. a decoded JSON object.
	//
	// A parent field that is absent or nil marks a root.
	Record map[string]any
)

const (
	readErrFmt = "failed to read (%s): %w"
)

// Record errors.
var (
	ErrEmptyFieldName         = errors.New("empty field name")
	ErrMissingIdentifier      = errors.New("missing identifier")
	ErrUncomparableIdentifier = errors.New("uncomparable identifier")

	ErrInvalidType = errors.New("invalid data type")
)

// NewFromRecords builds a [Tree] of [Record]s keyed by the values under identifierField &
// parentIdentifierField.
//
// Identifier values are compared with ==, an int 3 & a float64 3 are distinct identifiers. Records
// added after construction are not validated & must carry comparable identifiers.
func NewFromRecords(records []Record, identifierField, parentIdentifierField string, options ...Option) (t *Tree[Record, any], err error) {
	if identifierField == "" || parentIdentifierField == "" {
		err = fmt.Errorf("%w: %w", ErrBuildTree, ErrEmptyFieldName)
		return
	}

	for index := range records {
		if err = records[index].validate(identifierField, parentIdentifierField); err != nil {
			err = fmt.Errorf("%w: record %d: %w", ErrBuildTree, index, err)
			return
		}
	}

	return New(records, FieldKey(identifierField), FieldParentKey(parentIdentifierField), options...)
}

// FieldKey obtains a KeyFunc reading field from a [Record].
func FieldKey(field string) KeyFunc[Record, any] {
	return func(r Record) any { return r[field] }
}

// FieldParentKey obtains a ParentKeyFunc reading field from a [Record].
func FieldParentKey(field string) ParentKeyFunc[Record, any] {
	return func(r Record) (parentKey any, ok bool) {
		parentKey = r[field]
		ok = parentKey != nil

		return
	}
}

// validate checks that a [Record] carries usable identifiers.
func (r Record) validate(identifierField, parentIdentifierField string) (err error) {
	id, ok := r.Get(identifierField)
	if !ok {
		return fmt.Errorf("(%s) %w", identifierField, ErrMissingIdentifier)
	}
	if !reflect.ValueOf(id).Comparable() {
		return fmt.Errorf("(%s) %w: %T", identifierField, ErrUncomparableIdentifier, id)
	}

	if parentID, ok := r.Get(parentIdentifierField); ok && !reflect.ValueOf(parentID).Comparable() {
		return fmt.Errorf("(%s) %w: %T", parentIdentifierField, ErrUncomparableIdentifier, parentID)
	}

	return
}

// Get a value from a [Record], nil values are reported as absent.
func (r Record) Get(key string) (out any, ok bool) {
	if out = r[key]; out != nil {
		ok = true
	}

	return
}

// Has checks for the presence of a non-nil value.
func (r Record) Has(key string) (ok bool) {
	_, ok = r.Get(key)
	return
}

// GetString reads a string value from a [Record].
func (r Record) GetString(key string) (strVal string, err error) {
	if val, ok := r.Get(key); ok {
		if strVal, ok = val.(string); !ok {
			err = fmt.Errorf(readErrFmt, key, ErrInvalidType)
		}
	}

	return
}

// GetInt reads an integer value from a [Record].
//
// float64 values, as produced by encoding/json, are truncated.
func (r Record) GetInt(key string) (intVal int, err error) {
	val, ok := r.Get(key)
	if !ok {
		return
	}

	switch v := val.(type) {
	case int:
		intVal = v
	case int64:
		intVal = int(v)
	case uint:
		intVal = int(v)
	case float64:
		intVal = int(v)
	default:
		err = fmt.Errorf(readErrFmt, key, ErrInvalidType)
	}

	return
}

// GetBool reads a boolean value from a [Record].
func (r Record) GetBool(key string) (boolVal bool, err error) {
	if val, ok := r.Get(key); ok {
		if boolVal, ok = val.(bool); !ok {
			err = fmt.Errorf(readErrFmt, key, ErrInvalidType)
		}
	}

	return
}

// Merge a [Record] with the current one.
func (r Record) Merge(data Record) {
	for k, v := range data {
		r[k] = v
	}
}
