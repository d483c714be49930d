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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// writeHelp combines the usage message of the flag package with the list of
// modes and the additional help text.
func writeHelp(output io.Writer, usage string, path string, modes []Mode, additionalHelp string) {
	header, flags, _ := strings.Cut(usage, "\n")

	if flags == "" && len(modes) == 0 && additionalHelp == "" {
		if path != "" {
			fmt.Fprintf(output, "No help available for %s\n", path)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if path != "" {
		fmt.Fprintf(output, "%s for %s mode:\n", strings.TrimSuffix(header, ":"), path)
	} else {
		fmt.Fprintln(output, header)
	}

	io.WriteString(output, flags)

	if len(modes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		writeModes(output, modes)
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}

// writeModes writes one line for each mode with the help text aligned.
func writeModes(output io.Writer, modes []Mode) {
	var width int
	for _, m := range modes {
		width = max(width, len(m.Name))
	}

	fmt.Fprintln(output, "  modes:")
	for i, m := range modes {
		s := fmt.Sprintf("    %-*s  %s", width, m.Name, m.Help)
		if i == 0 {
			s = fmt.Sprintf("%s (default)", strings.TrimRight(s, " "))
		}
		fmt.Fprintln(output, strings.TrimRight(s, " "))
	}
}
