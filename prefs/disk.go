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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/logger"
)

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file while the application is running ***"

// DefaultPrefsFile is the name of the prefs file in the resource directory.
const DefaultPrefsFile = "preferences"

// the separator between key and value in a prefs file.
const separator = " :: "

// ErrDuplicateKey is returned by Disk.Add() if the key has already been added.
var ErrDuplicateKey = errors.New("prefs: duplicate key")

// entry in a Disk instance. the key is the key as it was added. the
// Disk.entries map is keyed by the lower case version of the key.
type entry struct {
	key string
	p   pref
}

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]entry

	// keys with values that were specified on the command line. these values
	// are not replaced by Load() or written by Save()
	overridden map[string]bool
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.sortedKeys() {
		e := dsk.entries[k]
		s.WriteString(fmt.Sprintf("%s%s%s\n", e.key, separator, e.p.String()))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:       path,
		entries:    make(map[string]entry),
		overridden: make(map[string]bool),
	}, nil
}

// Path returns the path of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. Keys are
// case insensitive.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	k := strings.ToLower(strings.TrimSpace(key))
	if _, ok := dsk.entries[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	dsk.entries[k] = entry{key: strings.TrimSpace(key), p: p}

	// values specified on the command line take priority over the default
	// value of the preference
	if ok, v := GetCommandLinePref(k); ok {
		if err := p.Set(v); err != nil {
			logger.Logf(logger.Allow, "prefs", "command line: %v", err)
		} else {
			dsk.overridden[k] = true
		}
	}

	return nil
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, e := range dsk.entries {
		if err := e.p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// parseLine splits a single line from a prefs file into a key and value. The
// key is returned in lower case with legacy names translated. Blank lines,
// comments and the boilerplate line return ok == false.
//
// Lines are normally of the form "key :: value" but the "key=value" form of
// the original configuration file is also accepted.
func parseLine(line string) (key string, rawKey string, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || line == WarningBoilerPlate {
		return "", "", "", false
	}
	if line[0] == '#' || line[0] == ';' {
		return "", "", "", false
	}

	k, v, found := strings.Cut(line, "::")
	if !found {
		k, v, found = strings.Cut(line, "=")
		if !found {
			return "", "", "", false
		}
	}

	rawKey = strings.TrimSpace(k)
	if rawKey == "" {
		return "", "", "", false
	}
	key = translateLegacy(strings.ToLower(rawKey))

	return key, rawKey, strings.TrimSpace(v), true
}

// the contents of a prefs file. keys are normalised as per parseLine().
type fileEntries map[string]entry

func readFile(path string) (fileEntries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(fileEntries)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, rawKey, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		var s String
		_ = s.Set(value)
		if key != strings.ToLower(rawKey) {
			// translated legacy key
			rawKey = key
		}
		entries[key] = entry{key: rawKey, p: &s}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Save current preference values to disk. Values in the prefs file that are
// not part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	entries, err := readFile(dsk.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("prefs: %w", err)
		}
		entries = make(fileEntries)
	}

	for k, e := range dsk.entries {
		if _, ok := entries[k]; ok && dsk.overridden[k] {
			continue
		}
		entries[k] = e
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		e := entries[k]
		fmt.Fprintf(w, "%s%s%s\n", e.key, separator, e.p.String())
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and
// saveOnFirstUse is true then the current values are saved to create the
// file.
//
// A value in the file that can not be used by its preference is logged and
// the preference keeps its current value.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	entries, err := readFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if saveOnFirstUse {
				return dsk.Save()
			}
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, fe := range entries {
		if dsk.overridden[k] {
			continue
		}
		if e, ok := dsk.entries[k]; ok {
			if err := e.p.Set(fe.p.String()); err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: %v", e.key, err)
			}
		}
	}

	return nil
}

// Watch the prefs file for changes. Every time the file is written to the
// preference values are reloaded and the onReload function is called with
// the result of the load.
//
// Watching continues until the context is cancelled.
func (dsk *Disk) Watch(ctx context.Context, onReload func(err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	// watching the directory rather than the file means that the watch
	// survives the file being replaced
	dir := filepath.Dir(dsk.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	target := filepath.Clean(dsk.path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				err := dsk.Load(false)
				if onReload != nil {
					onReload(err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Logf(logger.Allow, "prefs", "watch: %v", err)
			}
		}
	}()

	return nil
}
