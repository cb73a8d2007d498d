package core

import (
	"fmt"
	"reflect"
)

// Prefix is a token placed before the caller's arguments. It is either
// a literal string or a producer evaluated each time a message is
// emitted.
type Prefix struct {
	literal string
	produce func() string
}

// Literal creates a fixed prefix
func Literal(s string) Prefix {
	return Prefix{literal: s}
}

// Computed creates a prefix whose value is produced at emission time
func Computed(fn func() string) Prefix {
	return Prefix{produce: fn}
}

// IsComputed reports whether the prefix is lazily produced
func (p Prefix) IsComputed() bool {
	return p.produce != nil
}

// Resolve returns the prefix value. A panicking producer yields a
// placeholder in fmt's %!v(PANIC=...) style instead of propagating.
func (p Prefix) Resolve() string {
	if p.produce == nil {
		return p.literal
	}
	return Produce(p.produce)
}

// String implements fmt.Stringer
func (p Prefix) String() string {
	return p.Resolve()
}

// Produce calls fn, recovering from any panic.
func Produce(fn func() string) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%%!v(PANIC=%v)", r)
		}
	}()
	return fn()
}

var producerType = reflect.TypeOf((func() string)(nil))

// producerOf returns v as a func() string when its type is a named
// function type with that signature, such as type Tag func() string.
func producerOf(v interface{}) (func() string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() || !rv.Type().ConvertibleTo(producerType) {
		return nil, false
	}
	return rv.Convert(producerType).Interface().(func() string), true
}

// ToPrefix converts a namespace argument into a Prefix. Strings become
// literals, func() string (or a named type of that signature) becomes a
// computed prefix, and anything else is captured with fmt.Sprint at
// derivation time.
func ToPrefix(v interface{}) Prefix {
	switch val := v.(type) {
	case Prefix:
		return val
	case string:
		return Literal(val)
	case func() string:
		return Computed(val)
	case fmt.Stringer:
		return Computed(val.String)
	}
	if fn, ok := producerOf(v); ok {
		return Computed(fn)
	}
	return Literal(fmt.Sprint(v))
}

// ResolveArg renders one log argument into a token. Producers and
// Stringers are invoked now; a panic inside them becomes a placeholder.
func ResolveArg(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case Prefix:
		return val.Resolve()
	case func() string:
		return Produce(val)
	case fmt.Stringer:
		return Produce(val.String)
	case error:
		return Produce(val.Error)
	}
	if fn, ok := producerOf(v); ok {
		return Produce(fn)
	}
	return Produce(func() string { return fmt.Sprint(v) })
}
