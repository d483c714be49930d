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

package overlay

import (
	"fmt"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/noflick"
)

// TitleText returns the window title for the engine's status.
func TitleText(st noflick.Status) string {
	return fmt.Sprintf("Gigascreen No-Flick [%s]", st.Mode)
}

// Title remembers the most recent window title so that the window is only
// updated when the title changes. The zero value is ready to use.
type Title struct {
	text string
}

// Update returns the title for the status and whether it differs from the
// title returned by the previous call.
func (t *Title) Update(st noflick.Status) (string, bool) {
	s := TitleText(st)
	if s == t.text {
		return s, false
	}
	t.text = s
	return s, true
}
