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

package modalflag_test

import (
	"testing"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/modalflag"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/test"
)

var modes = []modalflag.Mode{
	{Name: "play", Help: "show frames"},
	{Name: "run", Help: "process frames"},
	{Name: "lut", Help: "write tables"},
}

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"Lut", "-gamma", "1.8", "-bits", "6", "-name", "tab", "out.h"})
	md.AddModes(modes...)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "LUT")

	md.NewMode()
	gamma := md.AddFloat64("gamma", 2.2, "")
	bits := md.AddInt("bits", 5, "")
	linear := md.AddBool("linear", false, "")
	name := md.AddString("name", "", "")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *gamma, 1.8)
	test.ExpectEquality(t, *bits, 6)
	test.ExpectFailure(t, *linear)
	test.ExpectEquality(t, *name, "tab")
	test.ExpectEquality(t, md.GetArg(0), "out.h")
	test.ExpectEquality(t, md.Path(), "LUT")
}

func TestNestedModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"run", "fast", "capture.gscap"})
	md.AddModes(modes...)

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AddModes(modalflag.Mode{Name: "slow"}, modalflag.Mode{Name: "fast"})
	_, err = md.Parse()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, md.Mode(), "FAST")
	test.ExpectEquality(t, md.Path(), "RUN/FAST")
	test.ExpectEquality(t, md.String(), "RUN/FAST")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "capture.gscap")

	// new arguments forget the earlier modes
	md.NewArgs([]string{"play"})
	md.AddModes(modes...)
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Path(), "PLAY")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"capture.gscap"})
	md.AddModes(modes...)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PLAY")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "capture.gscap")
}

// a flag that belongs to the default mode selects the default mode and is
// parsed again by that mode
func TestDefaultModeFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-scale", "3"})
	md.AddModes(modes...)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PLAY")

	md.NewMode()
	scale := md.AddInt("scale", 1, "")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *scale, 3)
}

func TestUnknownFlag(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectEquality(t, p.String(), "error")
	test.ExpectFailure(t, err)

	// the usage message from the flag package is not shown
	test.ExpectSuccess(t, tw.Compare(""), tw.String())
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddModes(modes...)

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  modes:\n" +
		"    PLAY  show frames (default)\n" +
		"    RUN   process frames\n" +
		"    LUT   write tables\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddModes(modalflag.Mode{Name: "A"}, modalflag.Mode{Name: "BB", Help: "second"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  modes:\n" +
		"    A (default)\n" +
		"    BB  second\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpForMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"lut", "-help"})
	md.AddModes(modes...)
	_, _ = md.Parse()

	md.NewMode()
	md.AddInt("bits", 5, "bit depth")
	md.AdditionalHelp("extra")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, p.String(), "help")

	expectedHelp := "Usage for LUT mode:\n" +
		"  -bits int\n" +
		"    	bit depth (default 5)\n" +
		"\n" +
		"extra\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestAdditionalHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AdditionalHelp("extra")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage:\n\nextra\n"), tw.String())
}
