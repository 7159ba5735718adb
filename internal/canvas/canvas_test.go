package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var green = color.NRGBA{0, 0xFF, 0, 0xFF}

func TestNew_OpaqueBlack(t *testing.T) {
	c := New(4, 3)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, Black, c.Pixel(3, 2))
	assert.Equal(t, color.NRGBA{}, c.Pixel(4, 0))
}

func TestFillRect_Clipped(t *testing.T) {
	c := New(10, 10)
	c.FillRect(-5, 8, 8, 8, green)
	assert.Equal(t, green, c.Pixel(0, 9))
	assert.Equal(t, green, c.Pixel(2, 8))
	assert.Equal(t, Black, c.Pixel(3, 8))
	assert.Equal(t, Black, c.Pixel(0, 7))
}

func TestFillRect_Translucent(t *testing.T) {
	c := New(2, 2)
	c.FillRect(0, 0, 2, 2, White)
	c.FillRect(0, 0, 1, 1, color.NRGBA{0, 0, 0, 0x80})
	p := c.Pixel(0, 0)
	assert.InDelta(t, 0x7F, int(p.R), 2)
	assert.Equal(t, uint8(0xFF), p.A)
}

func TestBlit_CopiesRegion(t *testing.T) {
	src := New(4, 4)
	src.SetPixel(2, 3, green)
	dst := New(8, 8)
	dst.Blit(src, 5, 5, 2, 2, 1, 2)
	assert.Equal(t, green, dst.Pixel(6, 6))
	assert.Equal(t, Black, dst.Pixel(5, 5))
}

func TestBlit_SourceOutOfRange(t *testing.T) {
	src := New(2, 2)
	src.FillRect(0, 0, 2, 2, green)
	dst := New(4, 4)
	dst.Blit(src, 0, 0, 4, 4, 1, 1)
	assert.Equal(t, green, dst.Pixel(0, 0))
	assert.Equal(t, Black, dst.Pixel(1, 1))
}

func TestMaskBlit_SkipsMaskColor(t *testing.T) {
	src := New(2, 1)
	src.SetPixel(0, 0, White)
	src.SetPixel(1, 0, green)
	dst := New(2, 1)
	dst.FillRect(0, 0, 2, 1, Red)
	dst.MaskBlit(src, 0, 0, 2, 1, 0, 0, White)
	assert.Equal(t, Red, dst.Pixel(0, 0))
	assert.Equal(t, green, dst.Pixel(1, 0))
}

func TestLines_Inclusive(t *testing.T) {
	c := New(5, 5)
	c.HLine(3, 1, 0, Red)
	c.VLine(4, 1, 3, Red)
	assert.Equal(t, Red, c.Pixel(1, 0))
	assert.Equal(t, Red, c.Pixel(3, 0))
	assert.Equal(t, Black, c.Pixel(4, 0))
	assert.Equal(t, Red, c.Pixel(4, 3))
	assert.Equal(t, Black, c.Pixel(4, 4))
}

func TestBorder_Outline(t *testing.T) {
	c := New(6, 6)
	c.Border(1, 1, 4, 4, Red)
	assert.Equal(t, Red, c.Pixel(1, 1))
	assert.Equal(t, Red, c.Pixel(4, 4))
	assert.Equal(t, Black, c.Pixel(2, 2))
}

func TestDrawText_PaintsGlyphsAndBackground(t *testing.T) {
	c := New(40, 20)
	c.FillRect(0, 0, 40, 20, White)
	c.DrawText(1, 1, Red, color.NRGBA{0, 0, 0, 0x80}, "AB")

	reds := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if c.Pixel(x, y) == Red {
				reds++
			}
		}
	}
	assert.Greater(t, reds, 0)
	assert.NotEqual(t, White, c.Pixel(1, 1))
	assert.Equal(t, White, c.Pixel(1+TextWidth("AB")+1, 1))
	assert.Equal(t, 2*GlyphWidth, TextWidth("AB"))
}

func TestDrawText_Empty(t *testing.T) {
	c := New(4, 4)
	c.DrawText(0, 0, Red, Black, "")
	assert.Equal(t, Black, c.Pixel(0, 0))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("WEBP")
	require.NoError(t, err)
	assert.Equal(t, WebP, f)
	assert.Equal(t, ".webp", f.Ext())
	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestSave_BMPRoundTrip(t *testing.T) {
	c := New(3, 2)
	c.SetPixel(2, 1, green)
	path := filepath.Join(t.TempDir(), "sub", "map.bmp")
	require.NoError(t, c.Save(path, BMP))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	back := FromImage(img)
	assert.Equal(t, green, back.Pixel(2, 1))
	assert.Equal(t, Black, back.Pixel(0, 0))
}

func TestEncode_PNG(t *testing.T) {
	c := New(2, 2)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c.Image(), PNG))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
}

func TestEncode_WebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, New(8, 8).Image(), WebP))
	assert.Equal(t, "RIFF", buf.String()[:4])
}

func TestDownsample_Size(t *testing.T) {
	c := New(100, 40)
	c.FillRect(0, 0, 100, 40, green)
	d := c.Downsample(0.25)
	assert.Equal(t, 25, d.Width())
	assert.Equal(t, 10, d.Height())
	p := d.Pixel(12, 5)
	assert.InDelta(t, 0xFF, int(p.G), 1)
	assert.InDelta(t, 0, int(p.R), 1)
	assert.Same(t, c, c.Downsample(1))
}

func TestCrop(t *testing.T) {
	c := New(10, 10)
	c.SetPixel(4, 5, Red)
	sub := c.Crop(3, 3, 4, 4)
	assert.Equal(t, 4, sub.Width())
	assert.Equal(t, Red, sub.Pixel(1, 2))

	clipped := c.Crop(8, 8, 5, 5)
	assert.Equal(t, 2, clipped.Width())
}
