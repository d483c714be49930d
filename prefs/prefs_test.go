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

package prefs_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/prefs"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gigascreen_prefs_test")
}

func writeFile(t *testing.T, fn string, contents string) {
	t.Helper()
	err := os.WriteFile(fn, []byte(contents), 0o600)
	test.DemandSuccess(t, err)
}

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match\nexpected:\n%s\nin file:\n%s", expected, string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	var y prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))
	test.ExpectSuccess(t, dsk.Add("testD", &y))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectSuccess(t, y.Set("1"))

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\ntestD :: true\n")

	// float is not a valid type for a Bool
	test.ExpectFailure(t, v.Set(1.0))
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	var v prefs.Float

	test.ExpectSuccess(t, v.Set(2.2))
	test.ExpectEquality(t, v.String(), "2.200")

	// comma as decimal separator
	test.ExpectSuccess(t, v.Set("1,8"))
	test.ExpectEquality(t, v.Get().(float64), 1.8)

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.Get().(float64), 3.0)

	test.ExpectFailure(t, v.Set("gamma"))
	test.ExpectEquality(t, v.Get().(float64), 3.0)
}

func TestValidator(t *testing.T) {
	var v prefs.Int

	refuse := errors.New("refused")
	v.SetValidator(func(n int) error {
		if n < 0 {
			return refuse
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, v.Get().(int), 5)

	// value is not stored if validation fails. strings are validated after
	// conversion
	err := v.Set(-1)
	test.ExpectSuccess(t, errors.Is(err, refuse))
	err = v.Set("-2")
	test.ExpectSuccess(t, errors.Is(err, refuse))
	test.ExpectEquality(t, v.Get().(int), 5)

	// zero value before anything is stored
	var f prefs.Float
	test.ExpectEquality(t, f.Get().(float64), 0.0)
	test.ExpectEquality(t, f.String(), "0.000")
}

// a value in the prefs file that fails validation leaves the preference
// unchanged
func TestLoadInvalid(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	v.SetValidator(func(n int) error {
		if n > 2 {
			return errors.New("too large")
		}
		return nil
	})
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectSuccess(t, dsk.Add("mode", &v))

	writeFile(t, fn, "mode :: 7
")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 2)

	writeFile(t, fn, "mode :: 1
")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 1)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file. (we haven't deleted it yet)
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v, w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))

	// keys are case insensitive
	err = dsk.Add("TEST", &w)
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrDuplicateKey))
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var gamma prefs.Float
	var mode prefs.Int
	var motion prefs.Bool
	test.ExpectSuccess(t, dsk.Add("gigascreen.gamma", &gamma))
	test.ExpectSuccess(t, dsk.Add("gigascreen.mode", &mode))
	test.ExpectSuccess(t, dsk.Add("gigascreen.motionCheck", &motion))

	// missing file is not an error and the file is not created
	test.ExpectSuccess(t, dsk.Load(false))
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	// missing file is created if requested
	test.ExpectSuccess(t, mode.Set(2))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpFile(t, fn, "gigascreen.gamma :: 0.000\ngigascreen.mode :: 2\ngigascreen.motionCheck :: false\n")

	writeFile(t, fn, fmt.Sprintf("%s\n# comment\nGIGASCREEN.GAMMA :: 2,4\ngigascreen.mode :: bad\ngigascreen.motioncheck :: true\n", prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, gamma.Get().(float64), 2.4)
	test.ExpectEquality(t, motion.Get().(bool), true)

	// a bad value leaves the preference unchanged
	test.ExpectEquality(t, mode.Get().(int), 2)
}

func TestLegacyFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var gamma prefs.Float
	var ratio prefs.Float
	var mode prefs.Int
	var fullbright prefs.Bool
	test.ExpectSuccess(t, dsk.Add("gigascreen.gamma", &gamma))
	test.ExpectSuccess(t, dsk.Add("gigascreen.ratio", &ratio))
	test.ExpectSuccess(t, dsk.Add("gigascreen.mode", &mode))
	test.ExpectSuccess(t, dsk.Add("gigascreen.fullbright", &fullbright))

	writeFile(t, fn, "; original configuration\n  Gamma = 2,8\nratio=0.6\nmode=1\nfullbright=1\nunused=7\n")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, gamma.Get().(float64), 2.8)
	test.ExpectEquality(t, ratio.Get().(float64), 0.6)
	test.ExpectEquality(t, mode.Get().(int), 1)
	test.ExpectEquality(t, fullbright.Get().(bool), true)

	// saving converts the file. unknown entries are kept
	test.ExpectSuccess(t, dsk.Save())
	cmpFile(t, fn, "gigascreen.fullbright :: true\ngigascreen.gamma :: 2.800\ngigascreen.mode :: 1\ngigascreen.ratio :: 0.600\nunused :: 7\n")
}

func TestWatch(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var ratio prefs.Float
	test.ExpectSuccess(t, dsk.Add("gigascreen.ratio", &ratio))
	test.DemandSuccess(t, dsk.Save())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 16)
	err = dsk.Watch(ctx, func(err error) {
		reloaded <- err
	})
	test.DemandSuccess(t, err)

	writeFile(t, fn, "gigascreen.ratio :: 0.8\n")

	// more than one event may be raised for the write. wait for the value to
	// change
	timeout := time.After(5 * time.Second)
	for ratio.Get().(float64) != 0.8 {
		select {
		case err := <-reloaded:
			test.ExpectSuccess(t, err)
		case <-timeout:
			t.Fatalf("prefs file was not reloaded")
		}
	}
}
