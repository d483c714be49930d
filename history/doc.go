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

// Package history keeps the most recent frames seen by the blending engine.
// Frames are stored in a ring of Depth slots. The logical age of a frame (one
// being the most recent) is independent of the physical slot it occupies; the
// ring is advanced by rotating the base slot rather than by moving pixel data.
//
// History must be seeded after every resize. Seeding copies the same frame
// into every slot so that no blending can occur between frames of different
// dimensions.
//
// Pushing a frame happens in two stages. Begin() rotates the ring and returns
// a Cycle. The Cycle gives access to the frames as they were aged before the
// rotation and to the slot that will hold the new frame. This allows a caller
// to read every age for a pixel position and then write the new pixel for
// that same position in a single pass over the frame.
package history
