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

package history_test

import (
	"errors"
	"testing"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/history"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/test"
)

func frameOf(w, h int, p rgb565.Pixel) rgb565.Frame {
	f := rgb565.NewFrame(w, h)
	f.Fill(p)
	return f
}

func TestSeeding(t *testing.T) {
	h := history.NewHistory(3, 2)
	test.ExpectFailure(t, h.Seeded())

	// cannot push before seeding
	err := h.Push(frameOf(3, 2, 1))
	test.ExpectSuccess(t, errors.Is(err, history.ErrUnseeded))

	// cannot seed with a frame of the wrong size
	err = h.Seed(frameOf(2, 2, 1))
	test.ExpectSuccess(t, errors.Is(err, history.ErrDimensions))
	test.ExpectFailure(t, h.Seeded())

	seed := frameOf(3, 2, 0x1234)
	test.DemandSuccess(t, h.Seed(seed))
	test.ExpectSuccess(t, h.Seeded())

	// every age holds the seed frame
	for age := 1; age <= history.Depth; age++ {
		f, err := h.At(age)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, f.Equal(seed), age)
	}

	// cannot seed twice
	err = h.Seed(seed)
	test.ExpectSuccess(t, errors.Is(err, history.ErrSeeded))

	// resize always unseeds
	h.Resize(3, 2)
	test.ExpectFailure(t, h.Seeded())
	w, ht := h.Dimensions()
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, ht, 2)
}

func TestSeedWithStride(t *testing.T) {
	h := history.NewHistory(2, 2)

	src := rgb565.Frame{
		Pix:    []rgb565.Pixel{1, 2, 0xff, 3, 4, 0xff},
		Width:  2,
		Height: 2,
		Stride: 3,
	}
	test.DemandSuccess(t, h.Seed(src))

	f, err := h.At(history.Depth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.At(0, 0), rgb565.Pixel(1))
	test.ExpectEquality(t, f.At(1, 0), rgb565.Pixel(2))
	test.ExpectEquality(t, f.At(0, 1), rgb565.Pixel(3))
	test.ExpectEquality(t, f.At(1, 1), rgb565.Pixel(4))
}

func TestAges(t *testing.T) {
	h := history.NewHistory(2, 1)
	test.DemandSuccess(t, h.Seed(frameOf(2, 1, 0)))

	var frames []rgb565.Frame
	for i := 1; i <= 5; i++ {
		f := frameOf(2, 1, rgb565.Pixel(i))
		frames = append(frames, f)
		test.DemandSuccess(t, h.Push(f))
	}

	for age := 1; age <= history.Depth; age++ {
		f, err := h.At(age)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, f.Equal(frames[len(frames)-age]), age)
	}

	// pushing another frame forgets the oldest
	test.DemandSuccess(t, h.Push(frameOf(2, 1, 6)))
	f, _ := h.At(1)
	test.ExpectEquality(t, f.At(0, 0), rgb565.Pixel(6))
	f, _ = h.At(5)
	test.ExpectEquality(t, f.At(0, 0), rgb565.Pixel(2))

	_, err := h.At(0)
	test.ExpectSuccess(t, errors.Is(err, history.ErrAgeOutOfRange))
	_, err = h.At(history.Depth + 1)
	test.ExpectSuccess(t, errors.Is(err, history.ErrAgeOutOfRange))
}

func TestCycle(t *testing.T) {
	h := history.NewHistory(2, 1)
	test.DemandSuccess(t, h.Seed(frameOf(2, 1, 0)))
	for i := 1; i <= 5; i++ {
		test.DemandSuccess(t, h.Push(frameOf(2, 1, rgb565.Pixel(i))))
	}

	c, err := h.Begin()
	test.DemandSuccess(t, err)

	// a cycle sees the ages as they were before it began
	for age := 1; age <= history.Depth; age++ {
		test.ExpectEquality(t, c.Row(age, 0)[0], rgb565.Pixel(6-age), age)
	}

	// reading the oldest age and then writing the new pixel for the same
	// position. the second position has not been written yet so the oldest
	// age is still visible there
	row := c.Row(0, 0)
	row[0] = 10
	test.ExpectEquality(t, c.Row(history.Depth, 0)[1], rgb565.Pixel(1))
	row[1] = 10

	f, _ := h.At(1)
	test.ExpectEquality(t, f.At(0, 0), rgb565.Pixel(10))
	test.ExpectEquality(t, f.At(1, 0), rgb565.Pixel(10))
	f, _ = h.At(2)
	test.ExpectEquality(t, f.At(0, 0), rgb565.Pixel(5))
	f, _ = h.At(5)
	test.ExpectEquality(t, f.At(0, 0), rgb565.Pixel(2))
}

func TestPushWrongSize(t *testing.T) {
	h := history.NewHistory(2, 2)
	test.DemandSuccess(t, h.Seed(frameOf(2, 2, 0)))
	err := h.Push(frameOf(3, 3, 1))
	test.ExpectSuccess(t, errors.Is(err, history.ErrDimensions))

	// failed push does not rotate the ring
	f, _ := h.At(1)
	test.ExpectEquality(t, f.At(0, 0), rgb565.Pixel(0))
}
