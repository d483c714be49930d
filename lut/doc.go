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

// Package lut builds the lookup tables used by the blending engine. Gamma
// correct blending requires moving colour values into linear light, averaging
// them and then moving the result back into the encoded colour space. Doing
// that with floating point maths for every pixel is expensive so the tables
// are calculated once, for every possible channel value, whenever the gamma
// or blend ratio changes.
//
// Two sets of tables are built. One for the 5-bit red and blue channels and
// one for the 6-bit green channel. Each set contains a forward table (linear
// to encoded), a reverse table (encoded to linear) and a two dimensional blend
// table indexed by the older and newer encoded values.
//
// A Tables instance is immutable once built. Callers that want to change the
// gamma or ratio should build a new instance and swap it in.
package lut
