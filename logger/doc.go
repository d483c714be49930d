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

// Package logger is the logging package used throughout the application. Log
// entries are tagged and can be conditionally added depending on the
// Permission argument.
//
// Consecutive log entries with the same tag and detail are collapsed into a
// single entry, with the repeat count shown when the entry is printed.
//
// There is a central logger accessed through the package level functions, and
// independent loggers can be created with NewLogger().
package logger
