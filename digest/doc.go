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

// Package digest is used to create fingerprints of the rendered output. A
// fingerprint is chained, meaning that the fingerprint of each frame includes
// the fingerprint of the frame before it. Two streams of output frames have
// the same fingerprint only if every frame in the two streams is the same.
//
// Fingerprints are useful for regression testing. If a change to the blending
// code changes the fingerprint of a known input then the output has changed.
package digest
