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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
)

// the first part of the buffer is the digest of the previous frame. the next
// part is the dimensions of the frame
const frameHeader = sha1.Size + 4

// Frames creates a chained digest of a stream of rgb565 frames. Only the
// visible area of each frame contributes to the digest, the stride of the
// frame makes no difference.
type Frames struct {
	digest [sha1.Size]byte
	buffer []byte
	count  int
}

// NewFrames is the preferred method of initialisation for the Frames type.
func NewFrames() *Frames {
	return &Frames{}
}

// Hash implements digest.Digest interface
func (dig *Frames) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Frames) ResetDigest() {
	clear(dig.digest[:])
	dig.count = 0
}

// Count returns the number of frames added since the digest was last reset.
func (dig *Frames) Count() int {
	return dig.count
}

// AddFrame adds the visible area of the frame to the digest.
func (dig *Frames) AddFrame(frame rgb565.Frame) {
	l := frameHeader + frame.Width*frame.Height*2
	if cap(dig.buffer) < l {
		dig.buffer = make([]byte, l)
	}
	dig.buffer = dig.buffer[:l]

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the buffer
	copy(dig.buffer, dig.digest[:])
	binary.LittleEndian.PutUint16(dig.buffer[sha1.Size:], uint16(frame.Width))
	binary.LittleEndian.PutUint16(dig.buffer[sha1.Size+2:], uint16(frame.Height))

	i := frameHeader
	for y := 0; y < frame.Height; y++ {
		for _, p := range frame.Row(y) {
			binary.LittleEndian.PutUint16(dig.buffer[i:], uint16(p))
			i += 2
		}
	}

	dig.digest = sha1.Sum(dig.buffer)
	dig.count++
}
