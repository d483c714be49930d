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

// Package userinput translates key presses from the user interface into
// actions on the anti-flicker engine.
//
// The GUI implementation converts its own events into the Event types of
// this package and forwards them to Controllers.HandleUserInput(). The
// Controllers type hides details of the GUI implementation from the engine.
//
// Keys are reported by the GUI as a level (key down or key up, possibly with
// auto-repeat). The Edge type converts the level into a single trigger so
// that holding Shift+Tab cycles the mode exactly once.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system.
package userinput
