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

// Package testcard provides synthetic sources of rgb565 video. The sources
// are deterministic: the frame returned for a frame number is always the
// same. This makes them suitable for regression testing and for measuring
// performance.
//
// Each source produces a specific kind of flicker. Gigascreen alternates two
// colours in a checker pattern, Tricolor cycles through pure red, green and
// blue, and Motion moves a block across a static background.
package testcard
