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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/test"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/version"
)

func TestLUTMode(t *testing.T) {
	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"lut", "-bits", "5", "-gamma", "2.2"}, tw)
	test.ExpectEquality(t, v, 0)

	test.ExpectSuccess(t, tw.Contains("#pragma once\n"))
	test.ExpectSuccess(t, tw.Contains("static const unsigned char lut_blend_5b[32][32] = {\n"))

	tw.Clear()
	v = launch(context.Background(), []string{"lut", "-linear", "-table", "forward", "-name", "fwd"}, tw)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, tw.HasPrefix("static const unsigned char fwd[32] = {\n  0x00, 0x01,"), tw.String())

	tw.Clear()
	v = launch(context.Background(), []string{"lut", "-bits", "8"}, tw)
	test.ExpectEquality(t, v, exitModeError)
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"-help"}, tw)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, tw.HasPrefix("Usage:\n  modes:\n"), tw.String())
	test.ExpectSuccess(t, tw.Contains("show a capture file or testcard in a window (default)\n"), tw.String())
	test.ExpectSuccess(t, tw.Contains("    VERSION      print version information\n"), tw.String())

	tw.Clear()
	v = launch(context.Background(), []string{"digest", "-help"}, tw)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, tw.HasPrefix("Usage for DIGEST mode:\n"), tw.String())
}

func TestVersionMode(t *testing.T) {
	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"version"}, tw)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, tw.Compare(fmt.Sprintf("Gigascreen No-Flick %s\n", version.Current)), tw.String())
}

func TestParseError(t *testing.T) {
	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"-nonsense"}, tw)
	test.ExpectEquality(t, v, exitParseError)
}

func TestRecordDigestRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := filepath.Join(dir, "gigascreen.cfg")
	err := os.WriteFile(cfg, []byte("mode=1\ngamma=2.2\n"), 0600)
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	v := launch(context.Background(), []string{"record", "-testcard", "tricolor", "-width", "16", "-height", "8", "-frames", "12", "in.gscap"}, tw)
	test.DemandEquality(t, v, 0)
	test.ExpectSuccess(t, tw.HasPrefix("12 frames of tricolor testcard written"), tw.String())

	digestOf := func(args ...string) string {
		tw.Clear()
		v := launch(context.Background(), append([]string{"digest", "-cfg", cfg}, args...), tw)
		test.ExpectEquality(t, v, 0)
		m := regexp.MustCompile(`^([0-9a-f]{40}) \(12 frames\)\n$`).FindStringSubmatch(tw.String())
		if m == nil {
			t.Fatalf("unexpected digest output: %s", tw.String())
		}
		return m[1]
	}

	// digest is deterministic
	d := digestOf("in.gscap")
	test.ExpectEquality(t, digestOf("in.gscap"), d)

	// command line override changes the output
	test.ExpectInequality(t, digestOf("-set", "gigascreen.mode::2", "in.gscap"), d)

	// malformed command line preferences
	tw.Clear()
	v = launch(context.Background(), []string{"digest", "-set", "gigascreen.mode=2", "in.gscap"}, tw)
	test.ExpectEquality(t, v, exitModeError)
	test.ExpectSuccess(t, tw.Contains("key::value"), tw.String())

	// run mode writes a capture of the output which can be read back
	tw.Clear()
	v = launch(context.Background(), []string{"run", "-cfg", cfg, "-png", "shot", "in.gscap", "out.gscap"}, tw)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, tw.HasPrefix("12 frames processed"), tw.String())

	_, err = os.Stat("shot_00011.png")
	test.ExpectSuccess(t, err)
	_, err = os.Stat("out.gscap")
	test.ExpectSuccess(t, err)

	// no output specified
	tw.Clear()
	v = launch(context.Background(), []string{"run", "-cfg", cfg, "in.gscap"}, tw)
	test.ExpectEquality(t, v, exitModeError)
}
