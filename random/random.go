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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Framer is implemented by types that can report the number of the frame
// currently being produced.
type Framer interface {
	FrameNum() int
}

// Random is a random number generator that is sensitive to the frame number.
type Random struct {
	frame Framer

	// the current sequence. recreated whenever the frame number changes
	rng     *rand.Rand
	rngNum  int
	rngInit bool

	// use zero seed rather than the random base seed. this is only really
	// useful where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(frame Framer) *Random {
	return &Random{
		frame: frame,
	}
}

// Restart the sequence of numbers for the current frame.
func (rnd *Random) Restart() {
	rnd.rngInit = false
}

// the RNG for the current frame
func (rnd *Random) rand() *rand.Rand {
	n := rnd.frame.FrameNum()
	if rnd.rngInit && rnd.rngNum == n {
		return rnd.rng
	}

	seed := int64(n)
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	rnd.rng = rand.New(rand.NewSource(seed))
	rnd.rngNum = n
	rnd.rngInit = true

	return rnd.rng
}

// Intn returns the next number in the sequence for the current frame, in the
// range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
