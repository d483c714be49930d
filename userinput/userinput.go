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

// Toggler is implemented by types that can cycle through the anti-flicker
// modes. The noflick.Engine type is the main implementation.
type Toggler interface {
	ToggleMode()
}

// Edge converts a level signal into a rising edge. The zero value is ready
// for use.
type Edge struct {
	down bool
}

// Update the level of the signal. Returns true only on the transition from
// up to down.
func (e *Edge) Update(down bool) bool {
	rising := down && !e.down
	e.down = down
	return rising
}

// Down returns the current level of the signal.
func (e *Edge) Down() bool {
	return e.down
}
