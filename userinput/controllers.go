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

// Controllers keeps track of the state of the user's input.
type Controllers struct {
	shiftTab Edge

	// whether or not the last HandleUserInput() was for an event that was
	// consumed
	LastKeyHandled bool

	// is true if the user has asked for a screenshot. the GUI should reset
	// the field once the screenshot has been taken
	Screenshot bool

	// is true if last event was a quit event
	Quit bool
}

func (c *Controllers) keyboard(ev EventKeyboard, handle Toggler) {
	// by default we'll say the key has been handled, unless specified otherwise
	c.LastKeyHandled = true

	switch ev.Key {
	case "Tab":
		// the level is only down while shift is held. releasing shift before
		// tab means a second press of shift is needed for another toggle
		if c.shiftTab.Update(ev.Down && ev.Mod&KeyModShift == KeyModShift) {
			handle.ToggleMode()
		}
		return
	case "Left Shift", "Right Shift":
		if !ev.Down {
			c.shiftTab.Update(false)
		}
		return
	}

	if ev.Repeat || !ev.Down {
		c.LastKeyHandled = false
		return
	}

	switch ev.Key {
	case "F12":
		c.Screenshot = true
	case "Escape":
		c.Quit = true
	case "Q":
		if ev.Mod&KeyModCtrl == KeyModCtrl {
			c.Quit = true
		} else {
			c.LastKeyHandled = false
		}
	default:
		c.LastKeyHandled = false
	}
}

// HandleUserInput deciphers the Event and forwards any mode change to the
// Toggler.
func (c *Controllers) HandleUserInput(ev Event, handle Toggler) {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		c.LastKeyHandled = true
	case EventKeyboard:
		c.keyboard(ev, handle)
	}
}
