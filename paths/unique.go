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

package paths

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// UniqueFilename returns the name of a file in the working directory that
// does not yet exist. The name is made from the prefix, the current time and
// the extension:
//
//	prefix_YYYYMMDD_HHMMSS.ext
//
// If that file already exists, for example when two screenshots are taken in
// the same second, a counter is added:
//
//	prefix_YYYYMMDD_HHMMSS_2.ext
func UniqueFilename(prefix string, ext string) string {
	base := fmt.Sprintf("%s_%s", prefix, time.Now().Format("20060102_150405"))

	ext = strings.TrimPrefix(ext, ".")
	if ext != "" {
		ext = "." + ext
	}

	fn := base + ext
	for n := 2; exists(fn); n++ {
		fn = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
	return fn
}

func exists(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}
