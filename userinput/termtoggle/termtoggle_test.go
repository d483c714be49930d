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

package termtoggle_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/test"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/userinput/termtoggle"
)

type counter struct {
	n int
}

func (c *counter) ToggleMode() {
	c.n++
}

func TestDecoder(t *testing.T) {
	var d termtoggle.Decoder

	test.ExpectEquality(t, d.Feed(0x1b), termtoggle.KeyNone)
	test.ExpectEquality(t, d.Feed('['), termtoggle.KeyNone)
	test.ExpectEquality(t, d.Feed('Z'), termtoggle.KeyShiftTab)

	// cursor up is not a back-tab
	test.ExpectEquality(t, d.Feed(0x1b), termtoggle.KeyNone)
	test.ExpectEquality(t, d.Feed('['), termtoggle.KeyNone)
	test.ExpectEquality(t, d.Feed('A'), termtoggle.KeyNone)

	// Z on its own is not a back-tab
	test.ExpectEquality(t, d.Feed('Z'), termtoggle.KeyNone)

	// a double escape restarts the sequence
	test.ExpectEquality(t, d.Feed(0x1b), termtoggle.KeyNone)
	test.ExpectEquality(t, d.Feed(0x1b), termtoggle.KeyNone)
	test.ExpectEquality(t, d.Feed('['), termtoggle.KeyNone)
	test.ExpectEquality(t, d.Feed('Z'), termtoggle.KeyShiftTab)

	test.ExpectEquality(t, d.Feed('q'), termtoggle.KeyQuit)
	test.ExpectEquality(t, d.Feed(0x03), termtoggle.KeyQuit)
}

func TestServe(t *testing.T) {
	var tog counter
	err := termtoggle.Serve(context.Background(), strings.NewReader("\x1b[Z..\x1b[Z\x1b[A"), &tog)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tog.n, 2)
}

func TestServeQuit(t *testing.T) {
	var tog counter
	err := termtoggle.Serve(context.Background(), strings.NewReader("\x1b[Zq\x1b[Z"), &tog)
	test.ExpectSuccess(t, errors.Is(err, termtoggle.ErrQuit))
	test.ExpectEquality(t, tog.n, 1)
}

func TestServeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var tog counter
	err := termtoggle.Serve(ctx, strings.NewReader("\x1b[Z"), &tog)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tog.n, 0)
}
