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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/noflick"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/performance/limiter"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/testcard"
)

// sentinal error returned by the runner loop.
var timedOut = errors.New("performance timed out")

// Leadtime is the period of rendering before measurement begins. Allows the
// framerate to settle down.
var Leadtime = 2 * time.Second

// Renderer is the part of the noflick.Engine used by Check().
type Renderer interface {
	Render(src rgb565.Frame, dst rgb565.Frame) (int, int)
}

// Check the performance of the engine using frames from the supplied
// generator.
//
// Rendering will run for the specificed duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument. If uncapped is false then frames are paced at
// limiter.DefaultFPS.
func Check(output io.Writer, profile Profile, eng Renderer, gen testcard.Generator, uncapped bool, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive (%s)", duration)
	}

	src := gen.Frame(0)
	dst := rgb565.NewFrame(src.Width*noflick.Scale, src.Height*noflick.Scale)

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim, err = limiter.NewFPSLimiter(limiter.DefaultFPS)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer lim.Stop()
	}

	var frameNum int
	var startFrame int

	// run for specified period of time
	runner := func() error {
		// signals true when duration has expired. signals false to indicate
		// that performance measurement should start
		timerChan := make(chan bool, 2)

		time.AfterFunc(Leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startFrame = frameNum
			default:
			}

			if lim != nil {
				lim.Wait()
			}

			src = gen.Frame(frameNum)
			if w, _ := eng.Render(src, dst); w == 0 {
				return fmt.Errorf("performance: frame %d not rendered", frameNum)
			}
			frameNum++
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	numFrames := frameNum - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds(), limiter.DefaultFPS)
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
