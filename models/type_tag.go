// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// TypeTag is the logical type of a table column.
// The declaration order is the order in which type inference attempts a
// match, so new tags must not be inserted between existing ones.
type TypeTag int

const (
	// Boolean columns hold true/false values.
	Boolean TypeTag = iota + 1

	// Integer columns hold signed 64-bit integers.
	Integer

	// Decimal columns hold fixed-point numbers (decimal.Decimal).
	Decimal

	// Guid columns hold UUIDs in canonical 8-4-4-4-12 form.
	Guid

	// DateTime columns hold timestamps (time.Time).
	DateTime

	// String is the fallback tag; every raw value is a valid String.
	String
)

// InferenceOrder lists the tags in the order type inference tries them.
var InferenceOrder = []TypeTag{Boolean, Integer, Decimal, Guid, DateTime, String}

var typeTagNames = map[TypeTag]string{
	Boolean:  "Boolean",
	Integer:  "Integer",
	Decimal:  "Decimal",
	Guid:     "Guid",
	DateTime: "DateTime",
	String:   "String",
}

// String returns the metadata name of the tag, e.g. "Integer".
func (t TypeTag) String() string {
	if name, ok := typeTagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TypeTag(%d)", int(t))
}

// Valid reports whether t is one of the declared tags.
func (t TypeTag) Valid() bool {
	_, ok := typeTagNames[t]
	return ok
}

// ParseTypeTag resolves a metadata name (case-insensitive) into a TypeTag.
func ParseTypeTag(name string) (TypeTag, error) {
	for tag, tagName := range typeTagNames {
		if strings.EqualFold(tagName, strings.TrimSpace(name)) {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("unknown type tag %q", name)
}

// MarshalText implements [encoding.TextMarshaler].
func (t TypeTag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown type tag %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *TypeTag) UnmarshalText(text []byte) error {
	tag, err := ParseTypeTag(string(text))
	if err != nil {
		return err
	}
	*t = tag
	return nil
}
