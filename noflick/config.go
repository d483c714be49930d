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
	"fmt"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/blend"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/lut"
)

// Config is the complete set of settings for an Engine.
type Config struct {
	Gamma       float64
	Ratio       float64
	Mode        blend.Mode
	Fullbright  bool
	MotionCheck bool
}

// DefaultConfig returns the Config used when there are no preferences.
func DefaultConfig() Config {
	return Config{
		Gamma: lut.DefaultGamma,
		Ratio: lut.DefaultRatio,
		Mode:  blend.DefaultMode,
	}
}

// Normalise returns a copy of the Config with every value clamped to its
// valid range. Invalid values that can not be clamped are replaced with the
// default value.
func (cfg Config) Normalise() Config {
	cfg.Gamma = lut.ClampGamma(cfg.Gamma)
	cfg.Ratio = lut.ClampRatio(cfg.Ratio)
	if !cfg.Mode.Valid() {
		cfg.Mode = blend.DefaultMode
	}
	return cfg
}

// Flags returns the blend flags for the Config.
func (cfg Config) Flags() blend.Flags {
	return blend.Flags{
		Fullbright:  cfg.Fullbright,
		MotionCheck: cfg.MotionCheck,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("mode=%s gamma=%.2f ratio=%.2f fullbright=%v motionCheck=%v",
		cfg.Mode, cfg.Gamma, cfg.Ratio, cfg.Fullbright, cfg.MotionCheck)
}
