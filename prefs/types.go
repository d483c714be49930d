// This file is part of Gigascreen No-Flick.
//
// Gigascreen No-Flick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gigascreen No-Flick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gigascreen No-Flick.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// typed is the storage shared by the prefs types. values can be read and
// written from any goroutine
type typed[T bool | int | float64 | string] struct {
	value    atomic.Pointer[T]
	validate func(T) error
}

// SetValidator sets a function that checks a new value before it is stored.
// If the function returns an error the value is not stored and Set() returns
// the error.
//
// The validator should be set before the preference is added to a Disk.
func (p *typed[T]) SetValidator(f func(T) error) {
	p.validate = f
}

func (p *typed[T]) store(nv T) error {
	if p.validate != nil {
		if err := p.validate(nv); err != nil {
			return err
		}
	}
	p.value.Store(&nv)
	return nil
}

// the zero value of the type is returned if nothing has been stored
func (p *typed[T]) load() T {
	if v := p.value.Load(); v != nil {
		return *v
	}
	var zero T
	return zero
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	typed[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool, int or string.
// The strings "true", "yes", "on" and "1" (case insensitive) set the value to
// true. Any other string sets the value to false. A non-zero integer is true.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case int:
		return p.store(v != 0)
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return p.store(true)
		}
		return p.store(false)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system. The Disk type uses it
// to hold values read from the prefs file.
type String struct {
	typed[string]
}

func (p *String) String() string {
	return p.load()
}

// Set new value to String type. Values of any type are converted with the %v
// verb.
func (p *String) Set(v Value) error {
	return p.store(fmt.Sprintf("%v", v))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	typed[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		nv, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
		return p.store(nv)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	typed[float64]
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.load())
}

// Set new value to Float type. New value can be a float, an int or a string.
// A string may use a comma as the decimal separator.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(v)
	case float32:
		return p.store(float64(v))
	case int:
		return p.store(float64(v))
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		nv, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float: %w", v, err)
		}
		return p.store(nv)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.load()
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}
