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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gigascreen No-Flick"

// set at build time with:
//
//	-ldflags "-X github.com/dotkoval/spectaculator-gigascreen-noflick/version.number=0.1.0"
var number string

// length of the revision in the short form of the version
const shortRevision = 7

// Info describes the build of the application.
type Info struct {
	// the version number set at build time. empty if the build is not a
	// release
	Number string

	// vcs revision and whether the working tree had uncommitted changes.
	// Revision is empty if there is no vcs information
	Revision string
	Dirty    bool
}

// FromBuildInfo creates an Info from the version number and the build
// information of the binary. The build information can be nil.
func FromBuildInfo(number string, bi *debug.BuildInfo) Info {
	info := Info{Number: number}
	if bi == nil {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// Release returns true if the build has a version number.
func (info Info) Release() bool {
	return info.Number != ""
}

// Short returns the version as a single word. For a release this is the
// version number. A build from a vcs checkout is "unreleased" followed by the
// start of the revision. Anything else is "local".
func (info Info) Short() string {
	if info.Release() {
		return info.Number
	}
	if info.Revision == "" {
		return "local"
	}
	s := fmt.Sprintf("unreleased-%s", info.Revision[:min(len(info.Revision), shortRevision)])
	if info.Dirty {
		s = fmt.Sprintf("%s+dirty", s)
	}
	return s
}

// String returns the short version followed by the complete revision, if
// there is one.
func (info Info) String() string {
	if info.Revision == "" {
		return info.Short()
	}
	if info.Dirty {
		return fmt.Sprintf("%s (%s+dirty)", info.Short(), info.Revision)
	}
	return fmt.Sprintf("%s (%s)", info.Short(), info.Revision)
}

// Current is the Info for the running binary.
var Current = FromBuildInfo(number, readBuildInfo())

func readBuildInfo() *debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return bi
}

// Short returns the short form of the running binary's version.
func Short() string {
	return Current.Short()
}
