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
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const modeSeparator = "/"

// Mode is a mode that can be selected on the command line. The Help string is
// a one line description shown by the help message.
type Mode struct {
	Name string
	Help string
}

// Modes parses a command line made up of modes, each with their own flags
// and arguments.
type Modes struct {
	// where to print help messages. if this is nil then help messages are
	// discarded
	Output io.Writer

	// a new flag set is created by every call to NewMode()
	flags *flag.FlagSet

	// the full list of arguments and the index of the first argument not yet
	// consumed by a mode
	args    []string
	argsIdx int

	// the modes that can be selected by the next call to Parse(). the first
	// mode is the default
	modes []Mode

	// every mode selected since the call to NewArgs()
	path []string

	// extra help text for the current mode
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. The name is always in upper
// case.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new set of flags and modes for the next call to Parse().
// Arguments consumed by earlier modes are not parsed again.
func (md *Modes) NewMode() {
	md.modes = nil
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddModes adds to the modes that can be selected by the next call to
// Parse(). The first mode added is the default mode. Names are compared
// without regard to case.
func (md *Modes) AddModes(modes ...Mode) {
	for _, m := range modes {
		m.Name = strings.ToUpper(m.Name)
		md.modes = append(md.modes, m)
	}
}

// AdditionalHelp sets text to be shown after the list of flags and modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If modes were added then Mode()
	// returns the selected mode.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// The arguments are not valid. The error is returned alongside the
	// result.
	ParseError
)

func (r ParseResult) String() string {
	switch r {
	case ParseContinue:
		return "continue"
	case ParseHelp:
		return "help"
	case ParseError:
		return "error"
	}
	return "unknown"
}

// Parse the arguments not yet consumed by an earlier mode.
//
// If modes have been added then the first non-flag argument selects the
// mode. When the argument is not a mode, or there is an unrecognised flag,
// the default mode is selected and the arguments are left for the default
// mode to parse.
func (md *Modes) Parse() (ParseResult, error) {
	var usage strings.Builder
	md.flags.SetOutput(&usage)

	err := md.flags.Parse(md.args[md.argsIdx:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		output := md.Output
		if output == nil {
			output = io.Discard
		}
		writeHelp(output, usage.String(), md.Path(), md.modes, md.additionalHelp)
		return ParseHelp, nil

	case err != nil && len(md.modes) == 0:
		return ParseError, fmt.Errorf("modalflag: %w", err)

	case err != nil:
		md.path = append(md.path, md.modes[0].Name)

	case len(md.modes) > 0:
		md.path = append(md.path, md.selectMode(md.flags.Arg(0)))
	}

	return ParseContinue, nil
}

// selectMode returns the name of the mode matching the argument, consuming
// the argument. The default mode is returned if there is no match.
func (md *Modes) selectMode(arg string) string {
	for _, m := range md.modes {
		if strings.EqualFold(m.Name, arg) {
			md.argsIdx++
			return m.Name
		}
	}
	return md.modes[0].Name
}

// RemainingArgs returns the arguments that are not flags or a mode, after a
// call to Parse().
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns one of the RemainingArgs(). An empty string is returned if
// there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
