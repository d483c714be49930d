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

package version_test

import (
	"runtime/debug"
	"testing"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/test"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/version"
)

func buildInfo(settings ...string) *debug.BuildInfo {
	bi := &debug.BuildInfo{}
	for i := 0; i+1 < len(settings); i += 2 {
		bi.Settings = append(bi.Settings, debug.BuildSetting{Key: settings[i], Value: settings[i+1]})
	}
	return bi
}

func TestRelease(t *testing.T) {
	info := version.FromBuildInfo("0.1.0", buildInfo("vcs", "git", "vcs.revision", "0123456789abcdef"))
	test.ExpectSuccess(t, info.Release())
	test.ExpectEquality(t, info.Short(), "0.1.0")
	test.ExpectEquality(t, info.String(), "0.1.0 (0123456789abcdef)")

	info = version.FromBuildInfo("0.1.0", nil)
	test.ExpectEquality(t, info.String(), "0.1.0")
}

func TestUnreleased(t *testing.T) {
	info := version.FromBuildInfo("", buildInfo("vcs", "git", "vcs.revision", "0123456789abcdef", "vcs.modified", "false"))
	test.ExpectFailure(t, info.Release())
	test.ExpectEquality(t, info.Short(), "unreleased-0123456")
	test.ExpectEquality(t, info.String(), "unreleased-0123456 (0123456789abcdef)")

	info = version.FromBuildInfo("", buildInfo("vcs.revision", "0123456789abcdef", "vcs.modified", "true"))
	test.ExpectEquality(t, info.Short(), "unreleased-0123456+dirty")
	test.ExpectEquality(t, info.String(), "unreleased-0123456+dirty (0123456789abcdef+dirty)")

	// revision shorter than the short form
	info = version.FromBuildInfo("", buildInfo("vcs.revision", "abc"))
	test.ExpectEquality(t, info.Short(), "unreleased-abc")
}

func TestLocal(t *testing.T) {
	info := version.FromBuildInfo("", nil)
	test.ExpectEquality(t, info.Short(), "local")
	test.ExpectEquality(t, info.String(), "local")

	info = version.FromBuildInfo("", buildInfo("GOOS", "linux"))
	test.ExpectEquality(t, info.Short(), "local")
}

func TestCurrent(t *testing.T) {
	// tests are never built with a version number
	test.ExpectFailure(t, version.Current.Release())
	test.ExpectEquality(t, version.Short(), version.Current.Short())
}
