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

// Package modalflag parses command lines made up of modes, each with their
// own flags and arguments. It is a wrapper for the flag package.
//
// Arguments are set once with NewArgs() and each mode then calls Parse() in
// turn:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddModes(
//		modalflag.Mode{Name: "PLAY", Help: "show a capture file in a window"},
//		modalflag.Mode{Name: "LUT", Help: "write a lookup table"},
//	)
//	_, _ = md.Parse()
//
// The first mode is the default. Mode names are compared without regard to
// case and Mode() reports them in upper case. The selected mode starts a new
// set of flags with NewMode():
//
//	switch md.Mode() {
//	case "LUT":
//		md.NewMode()
//		gamma := md.AddFloat64("gamma", 2.2, "gamma of the blend tables")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		writeLUT(*gamma, md.RemainingArgs())
//	}
//
// The -help flag prints the flags of the current mode and the list of modes
// that can be selected, with their help text. Modes can be nested. Path()
// returns every selected mode, separated by a slash.
package modalflag
