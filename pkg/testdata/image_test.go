package testdata

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTestImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures", "upload.png")
	background := color.RGBA{R: 200, G: 40, B: 40, A: 255}

	require.NoError(t, WriteTestImage(path, 320, 200, background, "seam fixture"))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	// Corners stay background-colored; the label is centered.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(200), r>>8)
	assert.Equal(t, uint32(40), g>>8)
	assert.Equal(t, uint32(40), b>>8)
}

func TestWriteTestImage_DefaultsAndNoLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.png")

	require.NoError(t, WriteTestImage(path, 10, 10, nil, ""))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	r, g, b, _ := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(255), r>>8)
	assert.Equal(t, uint32(255), g>>8)
	assert.Equal(t, uint32(255), b>>8)
}

func TestWriteTestImage_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "zero width", width: 0, height: 10},
		{name: "zero height", width: 10, height: 0},
		{name: "negative", width: -1, height: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteTestImage(filepath.Join(t.TempDir(), "bad.png"), tt.width, tt.height, nil, "")
			assert.ErrorContains(t, err, "invalid image dimensions")
		})
	}
}
