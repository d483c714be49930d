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

// Package random should be used in preference to the math/rand package when a
// random number is required to produce a frame.
//
// Numbers returned by Random are based on the current frame number of the
// Framer. The same frame number will always produce the same sequence of
// numbers for the lifetime of the program. As such, a generator can be asked
// for a frame more than once and produce the same result each time.
//
// If the same random numbers are required every single time the program is
// run then set ZeroSeed to true. This is useful for testing purposes.
package random
