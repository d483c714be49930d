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

package capture

import (
	"fmt"
	"image/png"
	"os"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
)

// SavePNG writes a single frame to the named file as a PNG image.
func SavePNG(filename string, frame rgb565.Frame) error {
	if !frame.Valid() || frame.Width == 0 || frame.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, frame.Width, frame.Height)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	err = png.Encode(f, rgb565.Image{Frame: frame})
	if err != nil {
		f.Close()
		return fmt.Errorf("capture: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	return nil
}
