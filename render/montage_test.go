package render

import (
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSolidPNG paints a small solid panel stand-in.
func writeSolidPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	dc := gg.NewContext(w, h)
	dc.SetRGB(0.5, 0.2, 0.2)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	require.NoError(t, dc.Fill())
	require.NoError(t, dc.SavePNG(path))
}

func TestSideBySide(t *testing.T) {
	dir := t.TempDir()
	left := filepath.Join(dir, "left.png")
	right := filepath.Join(dir, "right.png")
	out := filepath.Join(dir, "out.png")
	writeSolidPNG(t, left, 40, 30)
	writeSolidPNG(t, right, 40, 30)

	require.NoError(t, SideBySide(out, left, right))

	img, err := gg.LoadImage(out)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Width())
	assert.Equal(t, 30, img.Height())
}

func TestTripleGrid(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.png"),
	}
	for _, p := range paths {
		writeSolidPNG(t, p, 40, 30)
	}
	out := filepath.Join(dir, "out.png")

	require.NoError(t, TripleGrid(out, paths[0], paths[1], paths[2]))

	img, err := gg.LoadImage(out)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Width())
	assert.Equal(t, 60, img.Height())
}

func TestSideBySideMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := SideBySide(filepath.Join(dir, "out.png"),
		filepath.Join(dir, "nope.png"), filepath.Join(dir, "nope2.png"))
	assert.Error(t, err)
}
