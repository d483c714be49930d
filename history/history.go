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

package history

import (
	"errors"
	"fmt"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
)

// Depth is the number of frames kept by the history.
const Depth = 5

// Sentinel errors returned by History functions.
var (
	ErrUnseeded      = errors.New("history: not seeded")
	ErrSeeded        = errors.New("history: already seeded")
	ErrDimensions    = errors.New("history: frame dimensions do not match")
	ErrAgeOutOfRange = errors.New("history: age out of range")
)

// History is a ring of frames. The zero value is a history with no
// dimensions and is unseeded.
type History struct {
	width  int
	height int

	// number of pixels in a single frame
	size int

	// all slots are stored in the same slice. slot n starts at index n*size
	pixels []rgb565.Pixel

	// the physical slot holding the frame of age 1
	base int

	seeded bool
}

// NewHistory is the preferred method of initialisation for the History type.
func NewHistory(width, height int) *History {
	h := &History{}
	h.Resize(width, height)
	return h
}

func (h *History) String() string {
	return fmt.Sprintf("%dx%d seeded=%v base=%d", h.width, h.height, h.seeded, h.base)
}

// Resize reallocates the history for the new dimensions. The history will be
// unseeded after a resize, even if the dimensions have not changed.
func (h *History) Resize(width, height int) {
	// unseeded before the new buffer is visible
	h.seeded = false

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	h.width = width
	h.height = height
	h.size = width * height
	h.pixels = make([]rgb565.Pixel, h.size*Depth)
	h.base = 0
}

// Dimensions returns the width and height of frames in the history.
func (h *History) Dimensions() (int, int) {
	return h.width, h.height
}

// Seeded returns true if the history has been seeded since the most recent
// resize.
func (h *History) Seeded() bool {
	return h.seeded
}

// slot returns the pixels for the physical slot.
func (h *History) slot(n int) []rgb565.Pixel {
	return h.pixels[n*h.size : (n+1)*h.size]
}

// physical returns the physical slot for a logical age.
func (h *History) physical(age int) int {
	return (h.base + age - 1) % Depth
}

func (h *History) checkFrame(frame rgb565.Frame) error {
	if frame.Width != h.width || frame.Height != h.height || !frame.Valid() {
		return fmt.Errorf("%w: %dx%d frame for %dx%d history", ErrDimensions, frame.Width, frame.Height, h.width, h.height)
	}
	return nil
}

// Seed copies the frame into every slot of the history. It is an error to
// seed a history that has already been seeded or to seed with a frame of the
// wrong dimensions.
func (h *History) Seed(frame rgb565.Frame) error {
	if h.seeded {
		return ErrSeeded
	}
	if err := h.checkFrame(frame); err != nil {
		return err
	}

	for y := 0; y < h.height; y++ {
		h.SeedRow(y, frame.Row(y))
	}
	h.MarkSeeded()

	return nil
}

// SeedRow copies a single row into every slot of the history. Used when
// seeding at the same time as another pass over the frame. MarkSeeded() must
// be called once every row has been seeded.
func (h *History) SeedRow(y int, row []rgb565.Pixel) {
	i := y * h.width
	for s := 0; s < Depth; s++ {
		copy(h.slot(s)[i:i+h.width], row)
	}
}

// MarkSeeded indicates that every row of the history has been seeded.
func (h *History) MarkSeeded() {
	h.seeded = true
}

// At returns the frame at the logical age. An age of one is the most recent
// frame. The returned Frame shares memory with the history and must not be
// modified.
func (h *History) At(age int) (rgb565.Frame, error) {
	if age < 1 || age > Depth {
		return rgb565.Frame{}, fmt.Errorf("%w: %d", ErrAgeOutOfRange, age)
	}
	return rgb565.Frame{
		Pix:    h.slot(h.physical(age)),
		Width:  h.width,
		Height: h.height,
		Stride: h.width,
	}, nil
}

// Push adds a frame to the history. The frame becomes age one and the oldest
// frame is forgotten.
func (h *History) Push(frame rgb565.Frame) error {
	if err := h.checkFrame(frame); err != nil {
		return err
	}

	c, err := h.Begin()
	if err != nil {
		return err
	}
	for y := 0; y < h.height; y++ {
		copy(c.Row(0, y), frame.Row(y))
	}

	return nil
}

// Begin a push cycle. The ring is rotated immediately and the returned Cycle
// can be used to read the previous ages and to write the new frame.
func (h *History) Begin() (Cycle, error) {
	if !h.seeded {
		return Cycle{}, ErrUnseeded
	}

	var c Cycle
	c.width = h.width
	for age := 1; age <= Depth; age++ {
		c.ages[age-1] = h.slot(h.physical(age))
	}

	// the oldest slot becomes the slot for the new frame
	h.base = (h.base + Depth - 1) % Depth

	return c, nil
}

// Cycle is the state of a single push cycle. The age mapping of a cycle
// does not change while the cycle is being used.
type Cycle struct {
	width int

	// slots as they were aged before the cycle began. ages[0] is age 1 and
	// ages[Depth-1] is the oldest frame, the slot of which is overwritten by
	// the new frame
	ages [Depth][]rgb565.Pixel
}

// Row returns a row of a frame at the age it was before the cycle began. An
// age of zero returns the row of the slot being written to.
//
// Note that age zero and age Depth refer to the same memory. Reading age
// Depth for a pixel position must happen before that position is written.
func (c Cycle) Row(age int, y int) []rgb565.Pixel {
	if age == 0 {
		age = Depth
	}
	i := y * c.width
	return c.ages[age-1][i : i+c.width]
}
