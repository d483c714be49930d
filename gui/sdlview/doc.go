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

// Package sdlview shows the output of the anti-flicker engine in an SDL
// window.
//
// Source frames are rendered by the engine at twice their size, the
// notification bar is drawn over the result and the final image is uploaded
// to an RGB565 streaming texture. Frames are paced by the FpsLimiter from the
// performance/limiter package.
//
// Keyboard events are converted to userinput events. Shift+Tab cycles the
// anti-flicker mode and F12 saves a screenshot. Closing the window, Escape or
// Ctrl+Q ends the Run() loop.
//
// SDL requires that all calls are made from the main thread. NewSdlView()
// locks the calling goroutine to its thread and Run() should be called from
// the same goroutine.
package sdlview
