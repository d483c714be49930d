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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/paths"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gigascreen", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".gigascreen", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".gigascreen", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".gigascreen", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".gigascreen")

	pth, err := paths.ResourceDir("screenshots")
	test.ExpectSuccess(t, err)
	info, err := os.Stat(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	t.Chdir(t.TempDir())

	re := regexp.MustCompile(`^shot_[0-9]{8}_[0-9]{6}\.png$`)
	fn := paths.UniqueFilename("shot", "png")
	test.ExpectSuccess(t, re.MatchString(fn), fn)
	test.ExpectEquality(t, paths.UniqueFilename("shot", ".png"), fn)

	re = regexp.MustCompile(`^shot_[0-9]{8}_[0-9]{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("shot", "")))
}

func TestUniqueFilenameExists(t *testing.T) {
	t.Chdir(t.TempDir())

	// every name returned is new even when called more than once a second
	seen := make(map[string]bool)
	for range 3 {
		fn := paths.UniqueFilename("shot", "png")
		test.ExpectFailure(t, seen[fn], fn)
		seen[fn] = true
		test.DemandSuccess(t, os.WriteFile(fn, nil, 0o600))
	}

	re := regexp.MustCompile(`^shot_[0-9]{8}_[0-9]{6}(_[0-9]+)?\.png$`)
	for fn := range seen {
		test.ExpectSuccess(t, re.MatchString(fn), fn)
	}
}
