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

// Package termtoggle listens to the controlling terminal for the Shift+Tab
// key sequence and toggles the anti-flicker mode in response. It is used when
// there is no GUI window to receive key presses, or in addition to one.
//
// The terminal is put into raw mode for the duration of Listen(). Pressing q
// or Ctrl-C causes Listen() to return ErrQuit.
package termtoggle
