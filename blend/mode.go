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

package blend

import (
	"fmt"
	"strconv"
)

// Mode of the blending engine.
type Mode int

// List of valid Mode values.
const (
	Off Mode = iota
	TwoFrame
	Auto

	numModes
)

// DefaultMode is used when a requested mode is not valid.
const DefaultMode = Auto

func (m Mode) String() string {
	switch m {
	case Off:
		return "Disabled"
	case TwoFrame:
		return "2-frame"
	case Auto:
		return "2- or 3-frame"
	}
	return "Unknown"
}

// Valid returns true if the mode is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= Off && m < numModes
}

// Next returns the mode that follows m in the cycle Off, TwoFrame, Auto. An
// invalid mode is treated as DefaultMode.
func (m Mode) Next() Mode {
	if !m.Valid() {
		m = DefaultMode
	}
	return (m + 1) % numModes
}

// ModeFromInt converts an integer to a Mode. Out of range values are
// replaced with DefaultMode.
func ModeFromInt(v int) Mode {
	m := Mode(v)
	if !m.Valid() {
		return DefaultMode
	}
	return m
}

// ParseMode converts a string to a Mode. The string can be the integer value
// of the mode or one of OFF, TWOFRAME and AUTO.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "OFF", "off":
		return Off, nil
	case "TWOFRAME", "twoframe":
		return TwoFrame, nil
	case "AUTO", "auto":
		return Auto, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return DefaultMode, fmt.Errorf("blend: unrecognised mode %q", s)
	}
	m := Mode(v)
	if !m.Valid() {
		return DefaultMode, fmt.Errorf("blend: mode out of range (%d)", v)
	}
	return m, nil
}
