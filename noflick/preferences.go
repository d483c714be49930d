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

package noflick

import (
	"context"
	"fmt"
	"math"
	"path/filepath"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/blend"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/lut"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/paths"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/prefs"
)

// Preferences for the Engine as stored on disk.
type Preferences struct {
	dsk *prefs.Disk

	Gamma       prefs.Float
	Ratio       prefs.Float
	Mode        prefs.Int
	Fullbright  prefs.Bool
	MotionCheck prefs.Bool

	// show the startup banner on the notification bar
	Banner prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	gamma       = lut.DefaultGamma
	ratio       = lut.DefaultRatio
	mode        = int(blend.DefaultMode)
	fullbright  = false
	motionCheck = false
	banner      = true
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If the path is empty then the default prefs file in the
// resource directory is used.
//
// If create is true and the prefs file does not exist then it is created with
// the default values.
func NewPreferences(pth string, create bool) (*Preferences, error) {
	p := &Preferences{}
	p.Gamma.SetValidator(finite)
	p.Ratio.SetValidator(finite)
	p.SetDefaults()

	if pth == "" {
		dir, err := paths.ResourceDir()
		if err != nil {
			return nil, fmt.Errorf("noflick: %w", err)
		}
		pth = filepath.Join(dir, prefs.DefaultPrefsFile)
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("noflick: %w", err)
	}

	err = p.dsk.Add("gigascreen.gamma", &p.Gamma)
	if err != nil {
		return nil, fmt.Errorf("noflick: %w", err)
	}
	err = p.dsk.Add("gigascreen.ratio", &p.Ratio)
	if err != nil {
		return nil, fmt.Errorf("noflick: %w", err)
	}
	err = p.dsk.Add("gigascreen.mode", &p.Mode)
	if err != nil {
		return nil, fmt.Errorf("noflick: %w", err)
	}
	err = p.dsk.Add("gigascreen.fullbright", &p.Fullbright)
	if err != nil {
		return nil, fmt.Errorf("noflick: %w", err)
	}
	err = p.dsk.Add("gigascreen.motionCheck", &p.MotionCheck)
	if err != nil {
		return nil, fmt.Errorf("noflick: %w", err)
	}
	err = p.dsk.Add("gigascreen.banner", &p.Banner)
	if err != nil {
		return nil, fmt.Errorf("noflick: %w", err)
	}

	if err := p.dsk.Load(create); err != nil {
		return nil, fmt.Errorf("noflick: %w", err)
	}

	return p, nil
}

// finite rejects NaN and infinite values
func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("noflick: %v is not a finite value", v)
	}
	return nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Gamma.Set(gamma)
	p.Ratio.Set(ratio)
	p.Mode.Set(mode)
	p.Fullbright.Set(fullbright)
	p.MotionCheck.Set(motionCheck)
	p.Banner.Set(banner)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Path returns the path of the prefs file.
func (p *Preferences) Path() string {
	return p.dsk.Path()
}

// Watch the prefs file for changes. The onReload function is called with the
// result of every reload.
func (p *Preferences) Watch(ctx context.Context, onReload func(err error)) error {
	return p.dsk.Watch(ctx, onReload)
}

// Config returns the current preferences as a normalised Config.
func (p *Preferences) Config() Config {
	return Config{
		Gamma:       p.Gamma.Get().(float64),
		Ratio:       p.Ratio.Get().(float64),
		Mode:        blend.ModeFromInt(p.Mode.Get().(int)),
		Fullbright:  p.Fullbright.Get().(bool),
		MotionCheck: p.MotionCheck.Get().(bool),
	}.Normalise()
}
