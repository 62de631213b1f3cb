package export

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

var fixedTime = time.Date(2026, 3, 1, 9, 30, 5, 0, time.Local)

func TestImageFileName(t *testing.T) {
	name := ImageFileName(fixedTime)
	assert.Equal(t, "post_image_20260301_093005.png", name)
	assert.True(t, ValidImageName(name))
}

func TestValidImageName(t *testing.T) {
	assert.True(t, ValidImageName("post_image_20260301_093005_2.png"))
	assert.False(t, ValidImageName("../post_image_20260301_093005.png"))
	assert.False(t, ValidImageName("post_image_2026.png"))
	assert.False(t, ValidImageName("caption.txt"))
}

func TestSaveImage_WritesPNGAndAvoidsCollisions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	first, err := SaveImage(dir, img, fixedTime)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "post_image_20260301_093005.png"), first)

	second, err := SaveImage(dir, img, fixedTime)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "post_image_20260301_093005_1.png"), second)

	f, err := os.Open(first)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestCaptionText(t *testing.T) {
	c := dm.CopyResult{Caption: "Hydrate well.", Hashtags: []string{"nwa", "selfcare"}}
	assert.Equal(t, "Hydrate well.\n\n#nwa #selfcare", CaptionText(c))

	path, err := SaveCaption(t.TempDir(), c)
	require.NoError(t, err)
	assert.Equal(t, CaptionFileName, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hydrate well.\n\n#nwa #selfcare", string(data))
}
