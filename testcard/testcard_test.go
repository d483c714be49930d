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

package testcard_test

import (
	"testing"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/testcard"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/test"
)

func TestByName(t *testing.T) {
	for _, n := range testcard.Names() {
		gen, err := testcard.ByName(n, 16, 8)
		test.DemandSuccess(t, err, n)
		test.ExpectEquality(t, gen.String(), n)

		f := gen.Frame(0)
		test.ExpectEquality(t, f.Width, 16, n)
		test.ExpectEquality(t, f.Height, 8, n)
	}

	_, err := testcard.ByName("TRICOLOR", 16, 8)
	test.ExpectSuccess(t, err)

	_, err = testcard.ByName("noise", 16, 8)
	test.ExpectFailure(t, err)

	_, err = testcard.ByName("static", 0, 8)
	test.ExpectFailure(t, err)
}

func TestStatic(t *testing.T) {
	gen := testcard.NewStatic(16, 2)
	a := gen.Frame(0).Clone()
	b := gen.Frame(100)
	test.ExpectSuccess(t, a.Equal(b))
	test.ExpectEquality(t, a.At(0, 0), testcard.White)
	test.ExpectEquality(t, a.At(15, 1), testcard.Black)
}

func TestGigascreen(t *testing.T) {
	gen := testcard.NewGigascreen(4, 4, testcard.Red, testcard.Blue)
	gen.Square = 2

	f := gen.Frame(0)
	test.ExpectEquality(t, f.At(0, 0), testcard.Red)
	test.ExpectEquality(t, f.At(2, 0), testcard.Blue)
	test.ExpectEquality(t, f.At(2, 2), testcard.Red)

	// colours swap on the next frame
	f = gen.Frame(1)
	test.ExpectEquality(t, f.At(0, 0), testcard.Blue)
	test.ExpectEquality(t, f.At(2, 0), testcard.Red)
}

func TestTricolor(t *testing.T) {
	gen := testcard.NewTricolor(2, 2)
	for n := range 9 {
		test.ExpectEquality(t, gen.Frame(n).At(1, 1), testcard.Sequence[n%3], n)
	}
}

func TestMotion(t *testing.T) {
	gen := testcard.NewMotion(32, 16)

	a := gen.Frame(0).Clone()
	b := gen.Frame(1).Clone()
	test.ExpectFailure(t, a.Equal(b))

	// the block is drawn at the left edge on the first frame
	test.ExpectEquality(t, a.At(0, 8), testcard.Black)
	test.ExpectEquality(t, a.At(0, 0), testcard.White)

	// and the block has moved on the second frame
	test.ExpectEquality(t, b.At(0, 8), testcard.White)
	test.ExpectEquality(t, b.At(2, 8), testcard.Black)
}

func TestNoise(t *testing.T) {
	gen := testcard.NewNoise(32, 16)

	a := gen.Frame(3).Clone()
	b := gen.Frame(4).Clone()
	test.ExpectFailure(t, a.Equal(b))

	// the same frame number produces the same frame
	test.ExpectSuccess(t, gen.Frame(3).Equal(a))

	// every pixel in a block is the same colour
	test.ExpectEquality(t, a.At(0, 0), a.At(3, 3))
	test.ExpectEquality(t, a.At(4, 4), a.At(7, 7))
}
