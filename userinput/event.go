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

package userinput

// Event represents all the different type of events that can occur in the GUI.
type Event any

// KeyMod identifies the modifier keys held during a keyboard event. Values
// can be combined.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone  KeyMod = 0x00
	KeyModShift KeyMod = 0x01
	KeyModCtrl  KeyMod = 0x02
	KeyModAlt   KeyMod = 0x04
)

// EventKeyboard is the data that accompanies a keyboard event. The Key field
// is the name of the key as reported by the GUI ("Tab", "F12", "Q", etc.)
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// EventQuit is sent when the GUI window has been closed.
type EventQuit struct{}
