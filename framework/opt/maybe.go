// Package opt provides Maybe, an optional value type. Result fields that a handler may leave
// unset, such as an explicit status code or a timestamp, are represented with it so that
// "absent" and "zero" stay distinguishable.
package opt

import (
	"encoding/json"
	"fmt"
	"time"
)

// Maybe is an optional value: a status code a result did not set, an expectation property a
// suite file left out, or a missing timestamp.
type Maybe[V any] struct {
	defined bool
	value   V
}

// Some returns a Maybe that has a defined value.
func Some[V any](value V) Maybe[V] {
	return Maybe[V]{defined: true, value: value}
}

// None returns a Maybe with no value.
func None[V any]() Maybe[V] { return Maybe[V]{} }

// Timestamp returns None for the zero time.Time and Some(t) otherwise. Timestamps on results and
// in expectations use the zero time to mean "not set".
func Timestamp(t time.Time) Maybe[time.Time] {
	if t.IsZero() {
		return None[time.Time]()
	}
	return Some(t)
}

// IsDefined returns true if the Maybe has a value.
func (m Maybe[V]) IsDefined() bool { return m.defined }

// Value returns the value if a value is defined, or the zero value for the type otherwise.
func (m Maybe[V]) Value() V { return m.value }

// OrElse returns the value of the Maybe if any, or the valueIfUndefined otherwise. Results use
// it to fall back to their default status code.
func (m Maybe[V]) OrElse(valueIfUndefined V) V {
	if m.defined {
		return m.value
	}
	return valueIfUndefined
}

// Interface returns the value as an interface{}, or nil if undefined. Failure messages use this
// so that an absent value prints the same way as a nil one.
func (m Maybe[V]) Interface() interface{} {
	if m.defined {
		return m.value
	}
	return nil
}

// String returns the value's own String() if it has one, fmt's "%v" otherwise, or "[none]".
func (m Maybe[V]) String() string {
	if !m.defined {
		return "[none]"
	}
	var v interface{} = m.value
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", m.value)
}

// MarshalJSON produces the value's normal JSON representation, or null if undefined.
func (m Maybe[V]) MarshalJSON() ([]byte, error) {
	if m.defined {
		return json.Marshal(m.value)
	}
	return []byte("null"), nil
}

// UnmarshalJSON sets the Maybe to None for a JSON null, or else unmarshals a V and sets Some.
func (m *Maybe[V]) UnmarshalJSON(data []byte) error {
	var temp interface{}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp == nil {
		*m = None[V]()
		return nil
	}
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*m = Some(value)
	return nil
}
