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

package testcard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/random"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
)

// Generator implementations create a frame of video for a frame number. The
// returned frame may be reused by the generator on the next call.
type Generator interface {
	fmt.Stringer
	Frame(n int) rgb565.Frame
}

// list of colours used by the generators
const (
	Black   rgb565.Pixel = 0x0000
	Red     rgb565.Pixel = 0xf800
	Green   rgb565.Pixel = 0x07e0
	Blue    rgb565.Pixel = 0x001f
	Magenta rgb565.Pixel = 0xf81f
	Cyan    rgb565.Pixel = 0x07ff
	Yellow  rgb565.Pixel = 0xffe0
	White   rgb565.Pixel = 0xffff
)

// Static generates the same frame of colour bars every time.
type Static struct {
	frame rgb565.Frame
}

// NewStatic is the preferred method of initialisation for the Static type.
func NewStatic(width, height int) *Static {
	bars := []rgb565.Pixel{White, Yellow, Cyan, Green, Magenta, Red, Blue, Black}

	gen := &Static{frame: rgb565.NewFrame(width, height)}
	for y := 0; y < height; y++ {
		row := gen.frame.Row(y)
		for x := range row {
			row[x] = bars[x*len(bars)/width]
		}
	}
	return gen
}

func (gen *Static) String() string {
	return "static"
}

// Frame implements the Generator interface.
func (gen *Static) Frame(_ int) rgb565.Frame {
	return gen.frame
}

// Gigascreen generates a checker pattern of two colours. The colours swap
// position on every frame.
type Gigascreen struct {
	frame rgb565.Frame
	A, B  rgb565.Pixel

	// size of each square in the checker pattern
	Square int
}

// NewGigascreen is the preferred method of initialisation for the Gigascreen
// type.
func NewGigascreen(width, height int, a, b rgb565.Pixel) *Gigascreen {
	return &Gigascreen{
		frame:  rgb565.NewFrame(width, height),
		A:      a,
		B:      b,
		Square: 8,
	}
}

func (gen *Gigascreen) String() string {
	return "gigascreen"
}

// Frame implements the Generator interface.
func (gen *Gigascreen) Frame(n int) rgb565.Frame {
	sq := max(1, gen.Square)
	for y := 0; y < gen.frame.Height; y++ {
		row := gen.frame.Row(y)
		for x := range row {
			if ((x/sq)+(y/sq)+n)&1 == 0 {
				row[x] = gen.A
			} else {
				row[x] = gen.B
			}
		}
	}
	return gen.frame
}

// Tricolor generates frames of pure red, green and blue in sequence.
type Tricolor struct {
	frame rgb565.Frame
}

// NewTricolor is the preferred method of initialisation for the Tricolor type.
func NewTricolor(width, height int) *Tricolor {
	return &Tricolor{frame: rgb565.NewFrame(width, height)}
}

func (gen *Tricolor) String() string {
	return "tricolor"
}

// Sequence is the order of the colours produced by the Tricolor generator.
var Sequence = [3]rgb565.Pixel{Red, Green, Blue}

// Frame implements the Generator interface.
func (gen *Tricolor) Frame(n int) rgb565.Frame {
	gen.frame.Fill(Sequence[((n%3)+3)%3])
	return gen.frame
}

// Motion generates a block moving horizontally over a static background of
// colour bars.
type Motion struct {
	background *Static
	frame      rgb565.Frame

	// size of the moving block and the number of pixels it moves every frame
	Size  int
	Speed int
}

// NewMotion is the preferred method of initialisation for the Motion type.
func NewMotion(width, height int) *Motion {
	return &Motion{
		background: NewStatic(width, height),
		frame:      rgb565.NewFrame(width, height),
		Size:       max(1, min(width, height)/4),
		Speed:      2,
	}
}

func (gen *Motion) String() string {
	return "motion"
}

// Frame implements the Generator interface.
func (gen *Motion) Frame(n int) rgb565.Frame {
	bg := gen.background.Frame(n)
	for y := 0; y < gen.frame.Height; y++ {
		copy(gen.frame.Row(y), bg.Row(y))
	}

	w := gen.frame.Width
	if w == 0 {
		return gen.frame
	}

	x0 := (n * gen.Speed) % w
	if x0 < 0 {
		x0 += w
	}
	y0 := (gen.frame.Height - gen.Size) / 2

	for y := max(0, y0); y < min(gen.frame.Height, y0+gen.Size); y++ {
		row := gen.frame.Row(y)
		for x := x0; x < min(w, x0+gen.Size); x++ {
			row[x] = Black
		}
	}

	return gen.frame
}

// Noise generates blocks of random colour. Every frame is different but the
// same frame number always produces the same frame.
type Noise struct {
	frame rgb565.Frame
	rnd   *random.Random
	n     int

	// size of each block
	Block int
}

// NewNoise is the preferred method of initialisation for the Noise type.
func NewNoise(width, height int) *Noise {
	gen := &Noise{
		frame: rgb565.NewFrame(width, height),
		Block: 4,
	}
	gen.rnd = random.NewRandom(gen)
	gen.rnd.ZeroSeed = true
	return gen
}

func (gen *Noise) String() string {
	return "noise"
}

// FrameNum implements the random.Framer interface.
func (gen *Noise) FrameNum() int {
	return gen.n
}

// the colours used by the Noise generator
var noisePalette = []rgb565.Pixel{Black, Red, Green, Blue, Magenta, Cyan, Yellow, White}

// Frame implements the Generator interface.
func (gen *Noise) Frame(n int) rgb565.Frame {
	gen.n = n
	gen.rnd.Restart()

	b := max(1, gen.Block)
	for by := 0; by < gen.frame.Height; by += b {
		for bx := 0; bx < gen.frame.Width; bx += b {
			p := noisePalette[gen.rnd.Intn(len(noisePalette))]
			for y := by; y < min(gen.frame.Height, by+b); y++ {
				row := gen.frame.Row(y)
				for x := bx; x < min(gen.frame.Width, bx+b); x++ {
					row[x] = p
				}
			}
		}
	}

	return gen.frame
}

// list of generators by name
var generators = map[string]func(width, height int) Generator{
	"static": func(w, h int) Generator { return NewStatic(w, h) },
	"gigascreen": func(w, h int) Generator {
		return NewGigascreen(w, h, Blue, Yellow)
	},
	"tricolor": func(w, h int) Generator { return NewTricolor(w, h) },
	"motion":   func(w, h int) Generator { return NewMotion(w, h) },
	"noise":    func(w, h int) Generator { return NewNoise(w, h) },
}

// Names returns the names of the generators that can be created with
// ByName().
func Names() []string {
	n := make([]string, 0, len(generators))
	for k := range generators {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// ByName creates a generator from its name. Names are case insensitive.
func ByName(name string, width, height int) (Generator, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("testcard: invalid dimensions (%dx%d)", width, height)
	}
	f, ok := generators[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("testcard: unknown generator %q (%s)", name, strings.Join(Names(), ", "))
	}
	return f(width, height), nil
}
