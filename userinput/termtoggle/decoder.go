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

package termtoggle

// Key is the result of decoding bytes from the terminal.
type Key int

// List of valid Key values.
const (
	KeyNone Key = iota
	KeyShiftTab
	KeyQuit
)

// ANSI sequence sent by terminals for Shift+Tab (back-tab)
const (
	esc   = 0x1b
	csi   = '['
	final = 'Z'
	ctrlC = 0x03
)

// Decoder is a small state machine recognising the back-tab sequence in a
// stream of bytes. The zero value is ready for use.
type Decoder struct {
	state int
}

// Feed the next byte from the terminal into the decoder.
func (d *Decoder) Feed(b byte) Key {
	switch d.state {
	case 1:
		if b == csi {
			d.state = 2
			return KeyNone
		}
	case 2:
		d.state = 0
		if b == final {
			return KeyShiftTab
		}
		return KeyNone
	}

	d.state = 0
	switch b {
	case esc:
		d.state = 1
	case 'q', 'Q', ctrlC:
		return KeyQuit
	}
	return KeyNone
}
