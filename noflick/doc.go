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

// Package noflick removes the flicker from video that alternates between two
// or three frames to simulate more colours than the video hardware can
// display. The technique is known as "gigascreen" on the ZX Spectrum.
//
// The Engine type takes a source frame of rgb565 pixels and renders a frame
// of twice the width and height. Each output pixel is decided by the blend
// package from the source pixel and the pixels at the same position in the
// five previous source frames.
//
// The first frame rendered after the Engine is created, or after the
// dimensions of the source change, is a straight 2x copy of the source.
// Blending starts with the next frame.
//
// The Render() function should only be called from one goroutine. The
// ToggleMode() and Reload() functions are safe to call from any goroutine
// and take effect from the next call to Render().
package noflick
