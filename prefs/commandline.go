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

package prefs

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrCommandLine is returned by PushCommandLineStack() for a preference that
// is not in the "key::value" form.
var ErrCommandLine = errors.New("prefs: command line preference must be key::value")

// separators used in the command line form of preferences
const (
	commandLineSeparator = ";"
	commandLineAssign    = "::"
)

// each group on the stack is the set of preferences from one command line.
// Disk.Add() takes values from the group on the top of the stack
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// PushCommandLineStack parses preferences of the form "key::value; key::value"
// and makes them the current group. Keys are case insensitive and empty
// entries are ignored. Nothing is added to the stack if any entry is
// malformed.
func PushCommandLineStack(prefs string) error {
	group := make(map[string]string)

	for _, p := range strings.Split(prefs, commandLineSeparator) {
		if strings.TrimSpace(p) == "" {
			continue
		}

		k, v, ok := strings.Cut(p, commandLineAssign)
		k = strings.ToLower(strings.TrimSpace(k))
		if !ok || k == "" || strings.Contains(v, commandLineAssign) {
			return fmt.Errorf("%w: %q", ErrCommandLine, strings.TrimSpace(p))
		}
		group[k] = strings.TrimSpace(v)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, group)

	return nil
}

// PopCommandLineStack removes the current group. The preferences in the group
// that were never taken by GetCommandLinePref() are returned in the
// "key::value; key::value" form, sorted by key.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}
	group := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]

	keys := slices.Sorted(maps.Keys(group))
	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, k+commandLineAssign+group[k])
	}

	return strings.Join(unused, commandLineSeparator+" ")
}

// GetCommandLinePref takes the value for the key from the current group. A
// value can only be taken once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}
	group := commandLine.stack[n-1]

	key = strings.ToLower(strings.TrimSpace(key))
	v, ok := group[key]
	if !ok {
		return false, nil
	}
	delete(group, key)

	return true, v
}
