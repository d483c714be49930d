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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(limiter.DefaultFPS)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame rate of the host display refresh.
const DefaultFPS = 50

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate.

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	// nanoseconds per frame. atomic because SetLimit() can be called while
	// the ticker is running
	secondsPerFrame atomic.Int64

	tick chan bool
	quit chan bool
	stop atomic.Bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}

	// run ticker concurrently
	go func() {
		spf := time.Duration(lim.secondsPerFrame.Load())
		adjustedSecondPerFrame := spf
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjustedSecondPerFrame)
			nt := time.Now()

			// a change of limit resets the adjustment
			if n := time.Duration(lim.secondsPerFrame.Load()); n != spf {
				spf = n
				adjustedSecondPerFrame = spf
			} else {
				adjustedSecondPerFrame -= nt.Sub(t) - spf
				if adjustedSecondPerFrame < 0 {
					adjustedSecondPerFrame = 0
				}
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return fmt.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}
	lim.secondsPerFrame.Store(int64(time.Second) / int64(framesPerSecond))
	return nil
}

// Limit returns the current frames per second.
func (lim *FpsLimiter) Limit() int {
	return int(int64(time.Second) / lim.secondsPerFrame.Load())
}

// Wait will block until trigger. Returns immediately once the limiter has
// been stopped.
func (lim *FpsLimiter) Wait() {
	select {
	case <-lim.tick:
	case <-lim.quit:
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter's ticker. Safe to call more than once.
func (lim *FpsLimiter) Stop() {
	if lim.stop.CompareAndSwap(false, true) {
		close(lim.quit)
	}
}
