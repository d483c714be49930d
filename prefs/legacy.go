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

// the configuration file of the original plugin used unqualified key names and
// "key=value" lines. a legacy key is translated to its current name when it is
// found in a prefs file.
var legacy = map[string]string{
	"mode":        "gigascreen.mode",
	"gamma":       "gigascreen.gamma",
	"ratio":       "gigascreen.ratio",
	"fullbright":  "gigascreen.fullbright",
	"motioncheck": "gigascreen.motioncheck",
}

// returns the current name of a legacy key. keys that are not legacy keys are
// returned unchanged.
func translateLegacy(key string) string {
	if n, ok := legacy[key]; ok {
		return n
	}
	return key
}
