package testdata

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/seamq/seam/pkg/fileutil"
)

// WriteTestImage renders a solid-color PNG with an optional centered label
// and writes it to path, creating missing parent directories. Meant for
// file-upload fixtures where any decodable image of a known size will do.
func WriteTestImage(path string, width, height int, background color.Color, label string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if background == nil {
		background = color.White
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	if label != "" {
		drawLabel(img, width, height, label)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fileutil.EnsureDir(dir); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

func drawLabel(img *image.RGBA, width, height int, label string) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	textWidth := drawer.MeasureString(label).Ceil()
	drawer.Dot = fixed.P((width-textWidth)/2, (height+face.Ascent)/2)
	drawer.DrawString(label)
}
