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

package lut

import (
	"fmt"
	"io"
	"strings"
)

// number of values per line in emitted headers
const perLine = 16

// Linear returns a channel with identity forward and reverse tables and a
// blend table that mixes in the encoded space directly.
func Linear(dim int, ratio float64) Channel {
	ratio = ClampRatio(ratio)
	c := Channel{
		dim:     dim,
		forward: make([]uint8, dim),
		reverse: make([]uint8, dim),
		blend:   make([]uint8, dim*dim),
	}
	for i := 0; i < dim; i++ {
		c.forward[i] = uint8(i)
		c.reverse[i] = uint8(i)
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			c.blend[i*dim+j] = clampRound(float64(i)*(1.0-ratio)+float64(j)*ratio, float64(dim-1))
		}
	}
	return c
}

// WriteTable1D writes a one dimensional table as a C array declaration.
func WriteTable1D(w io.Writer, name string, table []uint8) error {
	s := &strings.Builder{}
	s.WriteString(fmt.Sprintf("static const unsigned char %s[%d] = {\n", name, len(table)))
	for i := 0; i < len(table); i += perLine {
		end := min(i+perLine, len(table))
		hex := make([]string, 0, perLine)
		for _, v := range table[i:end] {
			hex = append(hex, fmt.Sprintf("0x%02X", v))
		}
		s.WriteString("  ")
		s.WriteString(strings.Join(hex, ", "))
		if end < len(table) {
			s.WriteString(",")
		}
		s.WriteString("\n")
	}
	s.WriteString("};\n")

	_, err := io.WriteString(w, s.String())
	if err != nil {
		return fmt.Errorf("lut: %w", err)
	}
	return nil
}

// WriteHeader writes the blend table of the channel as a C header. The
// comment block records the parameters the table was built with.
func WriteHeader(w io.Writer, name string, c *Channel, gamma float64, ratio float64, linear bool) error {
	s := &strings.Builder{}
	s.WriteString("// 2D blend table: array[older][newer] = fwd(mix(rev[older], rev[newer]))\n")
	s.WriteString(fmt.Sprintf("// gamma = %.2f, linear = %v, dim = %d, mix ratio = %.2f\n\n", gamma, linear, c.dim, ratio))
	s.WriteString("#pragma once\n")
	s.WriteString(fmt.Sprintf("static const unsigned char %s[%d][%d] = {\n", name, c.dim, c.dim))
	for r := 0; r < c.dim; r++ {
		row := c.blend[r*c.dim : (r+1)*c.dim]
		s.WriteString("  {\n")
		for i := 0; i < c.dim; i += perLine {
			end := min(i+perLine, c.dim)
			hex := make([]string, 0, perLine)
			for _, v := range row[i:end] {
				hex = append(hex, fmt.Sprintf("0x%02X", v))
			}
			s.WriteString("    ")
			s.WriteString(strings.Join(hex, ","))
			if end < c.dim {
				s.WriteString(",")
			}
			s.WriteString("\n")
		}
		s.WriteString("  }")
		if r+1 < c.dim {
			s.WriteString(",")
		}
		s.WriteString("\n")
	}
	s.WriteString("};\n")

	_, err := io.WriteString(w, s.String())
	if err != nil {
		return fmt.Errorf("lut: %w", err)
	}
	return nil
}
