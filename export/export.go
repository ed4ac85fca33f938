// seehuhn.de/go/fingerpaint - a multi-touch finger painting engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package export writes pictures to image files, to a gallery directory,
// and to printable PDF documents.
package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 100

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}

// EncodeJPEG writes img to w in JPEG format.  A quality of 0 selects
// DefaultQuality.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality == 0 {
		quality = DefaultQuality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("jpeg: %w", err)
	}
	return nil
}

// Gallery saves pictures as JPEG files with unique names in a directory.
type Gallery struct {
	// Dir is the directory which holds the pictures.  It is created if
	// needed.
	Dir string

	// Prefix starts every file name.  The default is "Doodlz".
	Prefix string

	// Quality is the JPEG quality, from 1 to 100.  The default is
	// DefaultQuality.
	Quality int
}

// Save writes img to a new file in the gallery and returns the file name.
func (g *Gallery) Save(img image.Image) (string, error) {
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return "", fmt.Errorf("gallery: %w", err)
	}

	prefix := g.Prefix
	if prefix == "" {
		prefix = "Doodlz"
	}
	name := filepath.Join(g.Dir, prefix+"-"+uuid.NewString()+".jpg")

	if err := writeFile(name, func(w io.Writer) error {
		return EncodeJPEG(w, img, g.Quality)
	}); err != nil {
		return "", fmt.Errorf("gallery: %w", err)
	}
	return name, nil
}

// WritePNG writes img to the named file in PNG format.
func WritePNG(name string, img image.Image) error {
	return writeFile(name, func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
