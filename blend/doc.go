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

// Package blend decides the output value of a single pixel from the current
// pixel and the pixels at the same position in the five previous frames.
//
// There are three modes. Off passes the current pixel through unchanged.
// TwoFrame mixes the current and previous pixel with the gamma correct blend
// tables. Auto looks for a repeating cycle of three pure colours and, if one
// is found, averages all three. Otherwise Auto behaves like TwoFrame.
//
// The motion check flag restricts two frame blending to pixels that have been
// alternating between two values. The three colour path is not affected by
// the motion check because the cycle test is already a stricter test of a
// stable pattern.
package blend
