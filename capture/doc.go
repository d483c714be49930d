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

// Package capture reads and writes files of rgb565 video frames. A capture
// file is a zstd compressed stream. The stream begins with a header, made up
// of the magic string "GSCAP" and a version byte, followed by any number of
// frame records.
//
// Each frame record is the width and height of the frame as little-endian
// uint16 values followed by width*height little-endian pixels. The dimensions
// of the frames can change at any point in the stream.
package capture
