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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package paths contains functions to prepare paths to resources, such as
// the preferences file and screenshots.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example:
//
//	d := paths.ResourcePath("screenshots")
//
// The policy of ResourcePath() is simple: if the base resource path, currently
// defined to be ".gigascreen", is present in the program's current directory
// then that is the base path that will used. If it is not present, then the
// user's config directory is used.
//
// In the example above, on a modern Linux system, the path returned will be:
//
//	/home/user/.config/gigascreen/screenshots
package paths
