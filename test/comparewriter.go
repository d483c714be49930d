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

package test

import "strings"

// CompareWriter collects everything written to it so that the output of a
// function can be checked. The zero value is ready to use.
type CompareWriter struct {
	strings.Builder
}

// Compare returns true if the output is exactly the string.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.String() == s
}

// HasPrefix returns true if the output starts with the string.
func (tw *CompareWriter) HasPrefix(s string) bool {
	return strings.HasPrefix(tw.String(), s)
}

// Contains returns true if the string appears anywhere in the output.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.String(), s)
}

// Clear discards the output collected so far.
func (tw *CompareWriter) Clear() {
	tw.Reset()
}
