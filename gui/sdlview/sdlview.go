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

package sdlview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/gui/overlay"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/logger"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/noflick"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/performance/limiter"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes per pixel in the texture
const pixelDepth = 2

// Source returns the next frame to be shown. Returning io.EOF ends the
// Run() loop without error.
type Source func() (rgb565.Frame, error)

// SdlView is a simple SDL implementation of a display for the engine's
// output.
type SdlView struct {
	eng *noflick.Engine
	bar *overlay.Bar

	// user input state
	ctrl userinput.Controllers

	// limit screen updates to a fixed fps
	lmtr *limiter.FpsLimiter

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the texture. zero until the first frame has been received
	width  int32
	height int32

	// the integer amount by which the output is scaled in the window
	scale int32

	// output of the engine. the bar is drawn over it before uploading
	dst rgb565.Frame

	// the mode can be changed from other goroutines so the title is checked
	// every frame
	title overlay.Title
}

// NewSdlView is the preferred method of initialisation for the SdlView type.
// The window is not shown until the first frame has been rendered.
func NewSdlView(eng *noflick.Engine, bar *overlay.Bar, scale int) (*SdlView, error) {
	runtime.LockOSThread()

	scr := &SdlView{
		eng:   eng,
		bar:   bar,
		scale: int32(max(scale, 1)),
	}

	title, _ := scr.title.Update(eng.Status())

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	// SDL window. window size is set in the resize() function
	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	scr.lmtr, err = limiter.NewFPSLimiter(limiter.DefaultFPS)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	return scr, nil
}

// Destroy releases all SDL resources.
func (scr *SdlView) Destroy() {
	if scr.lmtr != nil {
		scr.lmtr.Stop()
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}

// SetFPS changes the rate at which frames are shown.
func (scr *SdlView) SetFPS(fps int) error {
	return scr.lmtr.SetLimit(fps)
}

// resize the texture and window for frames of the output size.
func (scr *SdlView) resize(width, height int) error {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	scr.width = int32(width)
	scr.height = int32(height)

	var err error

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it every frame
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB565),
		int(sdl.TEXTUREACCESS_STREAMING),
		scr.width, scr.height)
	if err != nil {
		return err
	}

	scr.window.SetSize(scr.width*scr.scale, scr.height*scr.scale)

	err = scr.renderer.SetLogicalSize(scr.width, scr.height)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "sdlview", "window resized to %dx%d", scr.width*scr.scale, scr.height*scr.scale)

	return nil
}

// Run shows frames from the Source until the Source is exhausted, the
// context is cancelled or the user closes the window.
func (scr *SdlView) Run(ctx context.Context, src Source) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		scr.service()
		if scr.ctrl.Quit {
			return nil
		}

		frame, err := src()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("sdlview: %w", err)
		}

		err = scr.show(frame)
		if err != nil {
			return fmt.Errorf("sdlview: %w", err)
		}

		if scr.ctrl.Screenshot {
			scr.ctrl.Screenshot = false
			scr.screenshot()
		}

		// wait for frame limiter
		scr.lmtr.Wait()
	}
}

// show renders the source frame and presents the result.
func (scr *SdlView) show(frame rgb565.Frame) error {
	w := frame.Width * noflick.Scale
	h := frame.Height * noflick.Scale
	if scr.dst.Width != w || scr.dst.Height != h {
		scr.dst = rgb565.NewFrame(w, h)
	}

	w, h = scr.eng.Render(frame, scr.dst)
	if w == 0 || h == 0 {
		// the engine has logged the problem. nothing to show
		return nil
	}

	if int32(w) != scr.width || int32(h) != scr.height {
		err := scr.resize(w, h)
		if err != nil {
			return err
		}
		scr.window.Show()
	}

	if title, ok := scr.title.Update(scr.eng.Status()); ok {
		scr.window.SetTitle(title)
	}

	if scr.bar != nil {
		scr.bar.Draw(scr.dst)
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}
	scr.dst.PutBytes(pixels, pitch)
	scr.texture.Unlock()

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
