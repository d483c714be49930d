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

package termtoggle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/logger"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/userinput"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Sentinal errors returned by Listen() and Serve().
var (
	ErrQuit       = errors.New("termtoggle: quit requested")
	ErrNoTerminal = errors.New("termtoggle: stdin is not a terminal")
)

// the device opened for reading
const ttyDevice = "/dev/tty"

// how often the context is checked while waiting for input
const readTimeout = 100 * time.Millisecond

// Listen puts the terminal into raw mode and forwards every Shift+Tab to the
// Toggler. The terminal is restored before returning.
func Listen(ctx context.Context, toggler userinput.Toggler) error {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNoTerminal
	}

	t, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return fmt.Errorf("termtoggle: %w", err)
	}
	defer func() {
		_ = t.Restore()
		_ = t.Close()
	}()

	err = t.SetReadTimeout(readTimeout)
	if err != nil {
		return fmt.Errorf("termtoggle: %w", err)
	}

	logger.Log(logger.Allow, "userinput", "listening for Shift+Tab on terminal")

	return Serve(ctx, timeoutReader{r: t}, toggler)
}

// timeoutReader converts the end-of-file returned by a raw terminal after a
// read timeout into an empty read.
type timeoutReader struct {
	r io.Reader
}

func (tr timeoutReader) Read(p []byte) (int, error) {
	n, err := tr.r.Read(p)
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, nil
	}
	return n, err
}

// Serve decodes key presses from the reader until the context is cancelled,
// the reader is exhausted or the user asks to quit.
//
// An empty read with no error is treated as a timeout and the context is
// checked before reading again.
func Serve(ctx context.Context, r io.Reader, toggler userinput.Toggler) error {
	var dec Decoder
	buf := make([]byte, 16)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			switch dec.Feed(b) {
			case KeyShiftTab:
				toggler.ToggleMode()
			case KeyQuit:
				return ErrQuit
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("termtoggle: %w", err)
		}
	}
}
