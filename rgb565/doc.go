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

// Package rgb565 describes the 16-bit packed pixel format used throughout the
// blending engine. A Pixel holds 5 bits of red (bits 15-11), 6 bits of green
// (bits 10-5) and 5 bits of blue (bits 4-0).
//
// The Frame type is a window onto a row-major pixel buffer. The stride of a
// Frame may exceed its width, which is the case for the buffers handed to a
// render plugin by the host emulator.
package rgb565
