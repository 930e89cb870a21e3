// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import (
	"fmt"
	"math"
)

// Kind discriminates the payload type of an Update.
type Kind uint8

// The closed set of payload kinds.
const (
	KindBool Kind = iota
	KindFloat32
	KindFloat64
	KindInt32
	KindUint32
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Update is one reactive value change: a key naming the watched value and a
// payload of exactly one kind. Updates are immutable once constructed.
//
// Numeric payloads share a single bit store; the per-kind accessors decode
// it and report ok=false on a kind mismatch, so a consumer can never read a
// float out of an int update by accident.
type Update struct {
	kind Kind
	key  string
	bits uint64
	text string
}

// Bool creates a boolean update.
func Bool(key string, v bool) Update {
	var bits uint64
	if v {
		bits = 1
	}
	return Update{kind: KindBool, key: key, bits: bits}
}

// Float32 creates a 32-bit float update.
func Float32(key string, v float32) Update {
	return Update{kind: KindFloat32, key: key, bits: uint64(math.Float32bits(v))}
}

// Float64 creates a 64-bit float update.
func Float64(key string, v float64) Update {
	return Update{kind: KindFloat64, key: key, bits: math.Float64bits(v)}
}

// Int32 creates a 32-bit signed integer update.
func Int32(key string, v int32) Update {
	return Update{kind: KindInt32, key: key, bits: uint64(uint32(v))}
}

// Uint32 creates a 32-bit unsigned integer update.
func Uint32(key string, v uint32) Update {
	return Update{kind: KindUint32, key: key, bits: uint64(v)}
}

// Text creates a text update.
func Text(key, v string) Update {
	return Update{kind: KindText, key: key, text: v}
}

// Kind returns the payload kind.
func (u Update) Kind() Kind { return u.kind }

// Key returns the name of the watched value.
func (u Update) Key() string { return u.key }

// Bool returns the boolean payload. ok is false for other kinds.
func (u Update) Bool() (v, ok bool) {
	if u.kind != KindBool {
		return false, false
	}
	return u.bits != 0, true
}

// Float32 returns the float32 payload. ok is false for other kinds.
func (u Update) Float32() (v float32, ok bool) {
	if u.kind != KindFloat32 {
		return 0, false
	}
	return math.Float32frombits(uint32(u.bits)), true
}

// Float64 returns the float64 payload. ok is false for other kinds.
func (u Update) Float64() (v float64, ok bool) {
	if u.kind != KindFloat64 {
		return 0, false
	}
	return math.Float64frombits(u.bits), true
}

// Int32 returns the int32 payload. ok is false for other kinds.
func (u Update) Int32() (v int32, ok bool) {
	if u.kind != KindInt32 {
		return 0, false
	}
	return int32(uint32(u.bits)), true
}

// Uint32 returns the uint32 payload. ok is false for other kinds.
func (u Update) Uint32() (v uint32, ok bool) {
	if u.kind != KindUint32 {
		return 0, false
	}
	return uint32(u.bits), true
}

// Text returns the text payload. ok is false for other kinds.
func (u Update) Text() (v string, ok bool) {
	if u.kind != KindText {
		return "", false
	}
	return u.text, true
}

// String returns a human-readable description, e.g. "speed=2.5 (float32)".
func (u Update) String() string {
	var v any
	switch u.kind {
	case KindBool:
		v = u.bits != 0
	case KindFloat32:
		v = math.Float32frombits(uint32(u.bits))
	case KindFloat64:
		v = math.Float64frombits(u.bits)
	case KindInt32:
		v = int32(uint32(u.bits))
	case KindUint32:
		v = uint32(u.bits)
	case KindText:
		v = u.text
	}
	return fmt.Sprintf("%s=%v (%s)", u.key, v, u.kind)
}
