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
	"github.com/dotkoval/spectaculator-gigascreen-noflick/capture"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/logger"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/notifications"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/paths"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// convert the SDL modifier state to the userinput equivalent.
func keyMod(mod sdl.Keymod) userinput.KeyMod {
	m := userinput.KeyModNone
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= userinput.KeyModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= userinput.KeyModCtrl
	}
	if mod&sdl.KMOD_ALT != 0 {
		m |= userinput.KeyModAlt
	}
	return m
}

// service all outstanding SDL events.
func (scr *SdlView) service() {
	// loop until there are no more events to retreive. we don't want to
	// truncate events because we may miss important user input
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.ctrl.HandleUserInput(userinput.EventQuit{}, scr.eng)

		case *sdl.KeyboardEvent:
			scr.ctrl.HandleUserInput(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Mod:    keyMod(sdl.Keymod(ev.Keysym.Mod)),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			}, scr.eng)
		}
	}
}

// save the most recent output to a PNG file in the working directory.
func (scr *SdlView) screenshot() {
	fn := paths.UniqueFilename("screenshot", "png")

	err := capture.SavePNG(fn, scr.dst)
	if err != nil {
		logger.Log(logger.Allow, "sdlview", err)
		return
	}

	logger.Logf(logger.Allow, "sdlview", "screenshot saved to %s", fn)

	if scr.bar != nil {
		_ = scr.bar.Notify(notifications.NotifyScreenshot)
	}
}
