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

package notifications

// Notice describes events that somehow change the presentation of the
// video stream. These notifications can be used to present additional
// information to the user
type Notice string

// List of defined notifications.
const (
	// the anti-flicker mode has been changed with the toggle key
	NotifyModeChanged Notice = "NotifyModeChanged"

	// the preferences have been reloaded and the blend tables rebuilt
	NotifyPrefsReloaded Notice = "NotifyPrefsReloaded"

	// the dimensions of the source video have changed
	NotifyResized Notice = "NotifyResized"

	// a screen shot is taking place
	NotifyScreenshot Notice = "NotifyScreenshot"
)

// Notify is used for communication between the engine and whatever is
// presenting the output. The main use is to show the current settings on the
// status bar whenever they change.
type Notify interface {
	Notify(notice Notice) error
}

// NotifyFunc is an adaptor allowing a function to be used as a Notify
// implementation.
type NotifyFunc func(notice Notice) error

// Notify implements the Notify interface.
func (f NotifyFunc) Notify(notice Notice) error {
	return f(notice)
}
