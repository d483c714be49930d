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

package overlay

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/blend"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/noflick"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/notifications"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
)

// Height of the bar in pixels, not including the rule at the bottom edge.
const Height = 15

// Delay is the number of frames the bar is visible for, including the frames
// for sliding in and out. At 50 frames per second this is four seconds.
const Delay = 200

// Colours used by the bar.
const (
	TextColor   rgb565.Pixel = 0xffdc
	ShadowColor rgb565.Pixel = 0x0001
)

// the face used for all text on the bar
var face = basicfont.Face7x13

// text is aligned to the left edge, the right edge or centered
type alignment int

const (
	alignLeft alignment = iota
	alignRight
	alignCenter
)

// a piece of text on one of the two lines of the bar
type item struct {
	text  string
	line  int
	align alignment
}

// Bar is the notification bar. It implements the notifications.Notify
// interface.
type Bar struct {
	crit sync.Mutex

	// the source of the settings shown on the bar
	status func() noflick.Status

	// the bar is the same width as the frame it is drawn on. the buffer has
	// room for two lines of text, the second line being used by the banner
	width  int
	buffer []rgb565.Pixel

	items []item
	dirty bool

	// number of frames remaining before the bar is hidden
	delay int

	// the banner is playing and the number of rows it has scrolled
	banner bool
	scroll int
}

// NewBar is the preferred method of initialisation for the Bar type. The
// status function is called whenever the bar needs to show the settings of the
// engine.
func NewBar(status func() noflick.Status) *Bar {
	return &Bar{status: status}
}

// StatusText returns the two pieces of text used to show the status. The
// first is shown on the left of the bar and the second on the right.
func StatusText(st noflick.Status) (string, string) {
	var motion string
	if st.Mode != blend.Off {
		if st.MotionCheck {
			motion = " (adaptive)"
		} else {
			motion = " (fullscreen)"
		}
	}
	left := fmt.Sprintf("Anti-flicker: %s%s", st.Mode, motion)
	right := fmt.Sprintf("| Gamma: %1.1f | Ratio: %d%%", st.Gamma, int(math.Round(st.Ratio*100)))
	return left, right
}

// BannerText returns the two lines of the startup banner.
func BannerText(version string) (string, string) {
	return fmt.Sprintf("Gigascreen No-Flick initialized (v%s)", version),
		"Press Shift+Tab to cycle anti-flicker modes"
}

// Banner starts the startup banner.
func (b *Bar) Banner(version string) {
	b.crit.Lock()
	defer b.crit.Unlock()

	l1, l2 := BannerText(version)
	b.items = []item{
		{text: l1, line: 0, align: alignCenter},
		{text: l2, line: 1, align: alignCenter},
	}
	b.dirty = true
	b.banner = true
	b.scroll = 0
	b.delay = Delay
}

// Notify implements the notifications.Notify interface.
func (b *Bar) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyModeChanged, notifications.NotifyPrefsReloaded, notifications.NotifyResized:
		if b.status == nil {
			return nil
		}
		left, right := StatusText(b.status())
		b.show(item{text: left, align: alignLeft}, item{text: right, align: alignRight})
	case notifications.NotifyScreenshot:
		b.show(item{text: "Screenshot saved", align: alignLeft})
	}
	return nil
}

func (b *Bar) show(items ...item) {
	b.crit.Lock()
	defer b.crit.Unlock()

	// the banner can't be interrupted
	if b.banner {
		return
	}

	b.items = items
	b.dirty = true

	// if the bar is already visible then the delay is extended. the slide in
	// is not repeated
	if b.delay > Height {
		b.delay = Delay - Height
	} else {
		b.delay = Delay
	}
}

// Visible returns true if the bar will be drawn by the next call to Draw().
func (b *Bar) Visible() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.delay > 0
}

// render the items into the buffer.
func (b *Bar) render() {
	l := b.width * Height * 2
	if cap(b.buffer) < l {
		b.buffer = make([]rgb565.Pixel, l)
	}
	b.buffer = b.buffer[:l]
	clear(b.buffer)

	if b.width == 0 {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, b.width, Height*2))
	advance := face.Advance
	ascent := face.Metrics().Ascent.Ceil()

	for _, it := range b.items {
		clear(mask.Pix)

		w := len(it.text) * advance
		var x int
		switch it.align {
		case alignLeft:
			x = 1
		case alignRight:
			x = b.width - w - 2
		case alignCenter:
			x = (b.width - w) / 2
		}

		d := font.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(x, it.line*Height+1+ascent),
		}
		d.DrawString(it.text)

		// shadow is drawn to the right and below the text
		b.stamp(mask, 1, 1, ShadowColor)
		b.stamp(mask, 1, 0, ShadowColor)
		b.stamp(mask, 0, 0, TextColor)
	}
}

// stamp the colour into the buffer wherever the mask is set.
func (b *Bar) stamp(mask *image.Alpha, ox, oy int, col rgb565.Pixel) {
	h := Height * 2
	for y := 0; y < h; y++ {
		ty := y + oy
		if ty >= h {
			break
		}
		row := mask.Pix[y*mask.Stride : y*mask.Stride+b.width]
		for x, a := range row {
			tx := x + ox
			if a < 0x80 || tx >= b.width {
				continue
			}
			b.buffer[ty*b.width+tx] = col
		}
	}
}

// Shade returns the colour of a pixel seen through an empty part of the bar.
// Dark pixels are brightened and bright pixels are darkened.
func Shade(p rgb565.Pixel) rgb565.Pixel {
	if p&0x8410 == 0 {
		return p | 0x4208
	}
	return ((p & 0xf7de) >> 1) | ((p & 0xe79c) >> 2)
}

// Draw the bar onto the frame. Every call to Draw() advances the animation of
// the bar by one frame.
func (b *Bar) Draw(dst rgb565.Frame) {
	b.crit.Lock()
	defer b.crit.Unlock()

	if b.delay == 0 {
		return
	}

	if dst.Width != b.width {
		b.width = dst.Width
		b.dirty = true
	}
	if b.dirty {
		b.render()
		b.dirty = false
	}

	b.delay--
	if b.delay == 0 {
		b.banner = false
		b.scroll = 0
	}

	// position of the top of the bar. the bar is partially hidden above the
	// top edge while it is sliding in or out
	var top int
	if b.delay < Height {
		top = b.delay - Height
	}
	if b.delay > Delay-Height {
		top = Delay - b.delay - Height
	}

	// the banner pauses while the second line scrolls into view
	if b.banner && b.delay == Height && b.scroll < Height {
		b.delay++
		b.scroll++
		if b.scroll == Height {
			b.delay = Delay - Height
		}
	}

	for y := max(0, top); y <= top+Height && y < dst.Height; y++ {
		row := dst.Row(y)

		// rule along the bottom edge
		if y == top+Height {
			for x := range row {
				row[x] = TextColor
			}
			continue
		}

		src := b.buffer[(y-top+b.scroll)*b.width:]
		for x := range row {
			p := src[x]
			if p == 0 {
				p = Shade(row[x])
			}
			row[x] = p
		}
	}
}
