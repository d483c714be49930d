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
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
)

// Magic is the first part of every capture stream.
const Magic = "GSCAP"

// Version of the capture format written by Writer.
const Version = 1

// MaxDimension is the largest width or height of a frame in a capture stream.
const MaxDimension = 0xffff

// number of pixels allocated for a frame before any pixel data has been read.
// enough for a 2x scaled ZX Spectrum screen
const initialPixels = 512 * 384

// Sentinal errors returned by the capture package.
var (
	ErrBadMagic   = errors.New("capture: not a capture stream")
	ErrVersion    = errors.New("capture: unsupported version")
	ErrTruncated  = errors.New("capture: truncated stream")
	ErrDimensions = errors.New("capture: unsupported frame dimensions")
)

// Writer writes frames to a capture stream.
type Writer struct {
	enc *zstd.Encoder
	buf []byte
	n   int
}

// NewWriter creates a new capture stream, writing the header immediately.
func NewWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	hdr := append([]byte(Magic), Version)
	if _, err := enc.Write(hdr); err != nil {
		enc.Close()
		return nil, fmt.Errorf("capture: %w", err)
	}

	return &Writer{enc: enc}, nil
}

// WriteFrame adds the visible area of a frame to the stream.
func (cw *Writer) WriteFrame(frame rgb565.Frame) error {
	if !frame.Valid() || frame.Width == 0 || frame.Height == 0 || frame.Width > MaxDimension || frame.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, frame.Width, frame.Height)
	}

	l := 4 + frame.Width*frame.Height*2
	if cap(cw.buf) < l {
		cw.buf = make([]byte, l)
	}

	rec := cw.buf[:l]
	binary.LittleEndian.PutUint16(rec, uint16(frame.Width))
	binary.LittleEndian.PutUint16(rec[2:], uint16(frame.Height))
	frame.PutBytes(rec[4:], frame.Width*2)
	if _, err := cw.enc.Write(rec); err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	cw.n++

	return nil
}

// Frames returns the number of frames written.
func (cw *Writer) Frames() int {
	return cw.n
}

// Close flushes the stream. It does not close the underlying io.Writer.
func (cw *Writer) Close() error {
	if err := cw.enc.Close(); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	return nil
}

// Reader reads frames from a capture stream.
type Reader struct {
	dec     *zstd.Decoder
	version byte
	buf     []byte
}

// NewReader opens a capture stream. The header is checked immediately.
func NewReader(r io.Reader) (*Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	hdr := make([]byte, len(Magic)+1)
	if _, err := io.ReadFull(dec, hdr); err != nil {
		dec.Close()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("capture: %w", err)
	}

	if string(hdr[:len(Magic)]) != Magic {
		dec.Close()
		return nil, ErrBadMagic
	}

	v := hdr[len(Magic)]
	if v == 0 || v > Version {
		dec.Close()
		return nil, fmt.Errorf("%w: %d", ErrVersion, v)
	}

	return &Reader{dec: dec, version: v}, nil
}

// ReadFrame returns the next frame in the stream. The returned frame is newly
// allocated. At the end of the stream io.EOF is returned.
func (cr *Reader) ReadFrame() (rgb565.Frame, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(cr.dec, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return rgb565.Frame{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return rgb565.Frame{}, ErrTruncated
		}
		return rgb565.Frame{}, fmt.Errorf("capture: %w", err)
	}

	width := int(binary.LittleEndian.Uint16(hdr[:]))
	height := int(binary.LittleEndian.Uint16(hdr[2:]))
	if width == 0 || height == 0 {
		return rgb565.Frame{}, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}

	// the dimensions come from the stream and can't be trusted. pixels are
	// only allocated for rows that have arrived
	pix := make([]rgb565.Pixel, 0, min(width*height, initialPixels))

	l := width * 2
	if cap(cr.buf) < l {
		cr.buf = make([]byte, l)
	}
	row := cr.buf[:l]

	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(cr.dec, row); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return rgb565.Frame{}, ErrTruncated
			}
			return rgb565.Frame{}, fmt.Errorf("capture: %w", err)
		}
		for x := 0; x < width; x++ {
			pix = append(pix, rgb565.Pixel(binary.LittleEndian.Uint16(row[x*2:])))
		}
	}

	return rgb565.Frame{
		Pix:    pix,
		Width:  width,
		Height: height,
		Stride: width,
	}, nil
}

// Close releases the resources used by the Reader. It does not close the
// underlying io.Reader.
func (cr *Reader) Close() {
	cr.dec.Close()
}
