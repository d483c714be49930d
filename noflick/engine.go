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

package noflick

import (
	"sync"
	"sync/atomic"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/blend"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/history"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/logger"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/lut"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/notifications"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
)

// Scale is the factor by which the output is larger than the source in both
// dimensions.
const Scale = 2

// bits in the atomic flags field
const (
	flagFullbright uint32 = 1 << iota
	flagMotionCheck
)

// Status is a snapshot of the current settings of the Engine.
type Status struct {
	Mode        blend.Mode
	Gamma       float64
	Ratio       float64
	Fullbright  bool
	MotionCheck bool
}

// Config returns the Status as a Config. Useful for changing a single setting
// with Reload().
func (st Status) Config() Config {
	return Config{
		Gamma:       st.Gamma,
		Ratio:       st.Ratio,
		Mode:        st.Mode,
		Fullbright:  st.Fullbright,
		MotionCheck: st.MotionCheck,
	}
}

// Engine renders source frames into deflickered output frames. Each stream of
// video must have its own Engine.
type Engine struct {
	// blending tables are replaced as a whole when the gamma or ratio changes
	tables atomic.Pointer[lut.Tables]

	mode  atomic.Int32
	flags atomic.Uint32

	// the remaining fields are only accessed by Render()
	hist *history.History

	// dimensions of the most recent source frame
	width, height int

	// the destination dimensions that were most recently reported as being
	// too small. used to prevent the log filling up with the same message
	tooSmallW, tooSmallH int

	// number of frames rendered since the history was last seeded
	frames int

	crit     sync.Mutex
	notifier notifications.Notify
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The Config is normalised before use.
func NewEngine(cfg Config) *Engine {
	eng := &Engine{
		hist: history.NewHistory(0, 0),
	}
	eng.apply(cfg.Normalise())
	return eng
}

func (eng *Engine) String() string {
	return eng.Status().Config().String()
}

// SetNotifier sets the Notify implementation that is told about changes to
// the engine. A value of nil stops the notifications.
func (eng *Engine) SetNotifier(notifier notifications.Notify) {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	eng.notifier = notifier
}

func (eng *Engine) notify(notice notifications.Notice) {
	eng.crit.Lock()
	n := eng.notifier
	eng.crit.Unlock()

	if n == nil {
		return
	}
	if err := n.Notify(notice); err != nil {
		logger.Logf(logger.Allow, "noflick", "notification: %v", err)
	}
}

func (eng *Engine) apply(cfg Config) {
	tab := eng.tables.Load()
	if tab == nil || tab.Gamma != cfg.Gamma || tab.Ratio != cfg.Ratio {
		eng.tables.Store(lut.Build(cfg.Gamma, cfg.Ratio))
		logger.Logf(logger.Allow, "lut", "built tables for gamma %.2f and ratio %.2f", cfg.Gamma, cfg.Ratio)
	}

	var flags uint32
	if cfg.Fullbright {
		flags |= flagFullbright
	}
	if cfg.MotionCheck {
		flags |= flagMotionCheck
	}
	eng.flags.Store(flags)
	eng.mode.Store(int32(cfg.Mode))
}

// Reload replaces the settings of the Engine. The blending tables are rebuilt
// if the gamma or ratio has changed.
func (eng *Engine) Reload(cfg Config) {
	cfg = cfg.Normalise()
	eng.apply(cfg)
	logger.Logf(logger.Allow, "noflick", "reloaded: %s", cfg)
	eng.notify(notifications.NotifyPrefsReloaded)
}

// ToggleMode advances the blending mode to the next mode in the cycle. Every
// call advances the mode once. The caller is responsible for making sure that
// a held key does not result in repeated calls.
func (eng *Engine) ToggleMode() {
	var m blend.Mode
	for {
		o := eng.mode.Load()
		m = blend.Mode(o).Next()
		if eng.mode.CompareAndSwap(o, int32(m)) {
			break
		}
	}
	logger.Logf(logger.Allow, "noflick", "mode: %s", m)
	eng.notify(notifications.NotifyModeChanged)
}

// Mode returns the current blending mode.
func (eng *Engine) Mode() blend.Mode {
	return blend.Mode(eng.mode.Load())
}

func (eng *Engine) blendFlags() blend.Flags {
	f := eng.flags.Load()
	return blend.Flags{
		Fullbright:  f&flagFullbright == flagFullbright,
		MotionCheck: f&flagMotionCheck == flagMotionCheck,
	}
}

// Status returns the current settings of the Engine.
func (eng *Engine) Status() Status {
	tab := eng.tables.Load()
	flags := eng.blendFlags()
	return Status{
		Mode:        eng.Mode(),
		Gamma:       tab.Gamma,
		Ratio:       tab.Ratio,
		Fullbright:  flags.Fullbright,
		MotionCheck: flags.MotionCheck,
	}
}

// Tables returns the blending tables currently in use.
func (eng *Engine) Tables() *lut.Tables {
	return eng.tables.Load()
}

// Frames returns the number of frames rendered since the history was last
// seeded, including the seeding frame.
func (eng *Engine) Frames() int {
	return eng.frames
}

// Render the source frame into the destination frame. The returned values are
// the width and height of the output, which is always Scale times the
// dimensions of the source.
//
// The destination must be at least Scale times the width and height of the
// source. If it is not then nothing is written to the destination and the
// returned width and height are zero.
func (eng *Engine) Render(src rgb565.Frame, dst rgb565.Frame) (int, int) {
	if !src.Valid() || !dst.Valid() {
		logger.Logf(logger.Allow, "noflick", "invalid frame: source %dx%d (stride %d) destination %dx%d (stride %d)",
			src.Width, src.Height, src.Stride, dst.Width, dst.Height, dst.Stride)
		return 0, 0
	}

	w := src.Width
	h := src.Height

	if w != eng.width || h != eng.height {
		resized := eng.width != 0 || eng.height != 0
		eng.hist.Resize(w, h)
		eng.width = w
		eng.height = h
		eng.tooSmallW = 0
		eng.tooSmallH = 0
		eng.frames = 0
		logger.Logf(logger.Allow, "noflick", "source dimensions: %dx%d", w, h)
		if resized {
			eng.notify(notifications.NotifyResized)
		}
	}

	if w == 0 || h == 0 {
		return 0, 0
	}

	if dst.Width < w*Scale || dst.Height < h*Scale {
		if dst.Width != eng.tooSmallW || dst.Height != eng.tooSmallH {
			eng.tooSmallW = dst.Width
			eng.tooSmallH = dst.Height
			logger.Logf(logger.Allow, "noflick", "destination too small: %dx%d for %dx%d source",
				dst.Width, dst.Height, w, h)
		}
		return 0, 0
	}

	if eng.hist.Seeded() {
		eng.blend(src, dst)
	} else {
		eng.seed(src, dst)
	}
	eng.frames++

	return w * Scale, h * Scale
}

// seed is a straight 2x copy of the source, which also seeds every slot of the
// history with the source.
func (eng *Engine) seed(src rgb565.Frame, dst rgb565.Frame) {
	w := src.Width
	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		d0 := dst.Row(y * Scale)[:w*Scale]
		for x, p := range srow {
			d0[x*Scale] = p
			d0[x*Scale+1] = p
		}
		copy(dst.Row(y*Scale + 1)[:w*Scale], d0)
		eng.hist.SeedRow(y, srow)
	}
	eng.hist.MarkSeeded()
}

func (eng *Engine) blend(src rgb565.Frame, dst rgb565.Frame) {
	// settings are loaded once so that the entire frame is rendered with the
	// same settings
	tab := eng.tables.Load()
	mode := eng.Mode()
	flags := eng.blendFlags()

	cyc, err := eng.hist.Begin()
	if err != nil {
		// this can't happen because the history is known to be seeded
		logger.Log(logger.Allow, "noflick", err)
		return
	}

	w := src.Width
	var s blend.Samples

	for y := 0; y < src.Height; y++ {
		srow := src.Row(y)
		r1 := cyc.Row(1, y)
		r2 := cyc.Row(2, y)
		r3 := cyc.Row(3, y)
		r4 := cyc.Row(4, y)
		r5 := cyc.Row(5, y)

		// the slot being written to is the same as the slot of the oldest
		// frame. r5[x] must be read before wr[x] is written
		wr := cyc.Row(0, y)

		d0 := dst.Row(y * Scale)[:w*Scale]

		for x, p0 := range srow {
			s = blend.Samples{p0, r1[x], r2[x], r3[x], r4[x], r5[x]}
			out := blend.Decide(tab, mode, flags, &s)
			d0[x*Scale] = out
			d0[x*Scale+1] = out
			wr[x] = p0
		}

		copy(dst.Row(y*Scale + 1)[:w*Scale], d0)
	}
}
