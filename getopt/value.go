package getopt

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Value is a destination the engine writes matched option values through.
//
// Set converts text and stores it. Solitary is called when the flag occurred
// without a value of its own; it returns true when that occurrence is
// already complete, and false when the engine must consume the next argument
// as the value.
type Value interface {
	Set(text string) error
	Solitary(incremental bool) bool
	Type() string
}

// Integer is the set of types accepted by Int
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of types accepted by FloatOf
type Float interface {
	~float32 | ~float64
}

type stringValue struct{ p *string }

// String binds a string destination. Any text is accepted.
func String(p *string) Value { return &stringValue{p: p} }

func (v *stringValue) Set(text string) error { *v.p = text; return nil }
func (v *stringValue) Solitary(bool) bool { return false }
func (v *stringValue) Type() string { return "string" }

type boolValue struct{ p *bool }

// Bool binds a boolean destination. Presence alone sets it to true; an
// attached value must be "true" or "false" in any case.
func Bool(p *bool) Value { return &boolValue{p: p} }

func (v *boolValue) Set(text string) error {
	lowered := strings.ToLower(text)
	if lowered != "true" && lowered != "false" {
		return &ConversionError{Expected: "bool", Got: lowered}
	}
	*v.p = lowered == "true"
	return nil
}

func (v *boolValue) Solitary(bool) bool {
	*v.p = true
	return true
}

func (v *boolValue) Type() string { return "bool" }

type intValue[T Integer] struct{ p *T }

// Int binds any integer destination. With an incremental spec ("v+") each
// occurrence without a value adds one.
func Int[T Integer](p *T) Value { return &intValue[T]{p: p} }

func (v *intValue[T]) Set(text string) error {
	var zero T
	bits := reflect.TypeOf(zero).Bits()
	if zero-1 < zero {
		n, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return &ConversionError{Expected: v.Type(), Got: text}
		}
		*v.p = T(n)
		return nil
	}
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return &ConversionError{Expected: v.Type(), Got: text}
	}
	*v.p = T(n)
	return nil
}

func (v *intValue[T]) Solitary(incremental bool) bool {
	if incremental {
		*v.p++
	}
	return incremental
}

func (v *intValue[T]) Type() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

type floatValue[T Float] struct{ p *T }

// FloatOf binds a float32 or float64 destination
func FloatOf[T Float](p *T) Value { return &floatValue[T]{p: p} }

func (v *floatValue[T]) Set(text string) error {
	var zero T
	n, err := strconv.ParseFloat(text, reflect.TypeOf(zero).Bits())
	if err != nil {
		return &ConversionError{Expected: v.Type(), Got: text}
	}
	*v.p = T(n)
	return nil
}

func (v *floatValue[T]) Solitary(bool) bool { return false }

func (v *floatValue[T]) Type() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

type durationValue struct{ p *time.Duration }

// Duration binds a time.Duration destination parsed with time.ParseDuration
func Duration(p *time.Duration) Value { return &durationValue{p: p} }

func (v *durationValue) Set(text string) error {
	d, err := time.ParseDuration(text)
	if err != nil {
		return &ConversionError{Expected: v.Type(), Got: text}
	}
	*v.p = d
	return nil
}

func (v *durationValue) Solitary(bool) bool { return false }
func (v *durationValue) Type() string { return "duration" }

type pflagValue struct{ v pflag.Value }

// PFlag adapts a pflag.Value so existing custom flag types can be used as
// destinations. Values whose Type() is "bool" behave like Bool.
func PFlag(v pflag.Value) Value { return &pflagValue{v: v} }

func (p *pflagValue) Set(text string) error {
	if err := p.v.Set(text); err != nil {
		return &ConversionError{Expected: p.v.Type(), Got: text}
	}
	return nil
}

func (p *pflagValue) Solitary(bool) bool {
	if p.v.Type() != "bool" {
		return false
	}
	return p.v.Set("true") == nil
}

func (p *pflagValue) Type() string { return p.v.Type() }

// valueOf resolves a destination passed to Opt
func valueOf(dest any) (Value, bool) {
	switch d := dest.(type) {
	case Value:
		return d, true
	case pflag.Value:
		return PFlag(d), true
	case *string:
		return String(d), true
	case *bool:
		return Bool(d), true
	case *int:
		return Int(d), true
	case *int8:
		return Int(d), true
	case *int16:
		return Int(d), true
	case *int32:
		return Int(d), true
	case *int64:
		return Int(d), true
	case *uint:
		return Int(d), true
	case *uint8:
		return Int(d), true
	case *uint16:
		return Int(d), true
	case *uint32:
		return Int(d), true
	case *uint64:
		return Int(d), true
	case *float32:
		return FloatOf(d), true
	case *float64:
		return FloatOf(d), true
	case *time.Duration:
		return Duration(d), true
	default:
		return nil, false
	}
}
