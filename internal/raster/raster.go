// Package raster turns SVG documents into PNG bitmaps using oksvg for
// parsing and rasterx for scan conversion.
package raster

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/Mavwarf/mkicon/internal/paths"
)

// ErrNoViewBox is returned when a document has neither a viewBox nor a
// width/height to scale from. Plain text and non-SVG XML end up here.
var ErrNoViewBox = errors.New("svg has no usable viewBox or size")

// Decode parses an SVG document.
func Decode(r io.Reader) (*oksvg.SvgIcon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		// oksvg stops reading the root attributes at the first width or
		// height it cannot parse ("100%", "auto"), losing a later viewBox.
		x, y, w, h, ok := rootViewBox(data)
		if !ok {
			return nil, ErrNoViewBox
		}
		icon.ViewBox.X, icon.ViewBox.Y, icon.ViewBox.W, icon.ViewBox.H = x, y, w, h
	}
	return icon, nil
}

// rootViewBox reads the viewBox attribute of the document's root <svg>
// element. ok is false if there is none or it is not four numbers with a
// positive width and height.
func rootViewBox(data []byte) (x, y, w, h float64, ok bool) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return 0, 0, 0, 0, false
		}
		se, isStart := tok.(xml.StartElement)
		if !isStart {
			continue
		}
		if se.Name.Local != "svg" {
			return 0, 0, 0, 0, false
		}
		for _, a := range se.Attr {
			if a.Name.Local == "viewBox" {
				return parseViewBox(a.Value)
			}
		}
		return 0, 0, 0, 0, false
	}
}

func parseViewBox(v string) (x, y, w, h float64, ok bool) {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 4 {
		return 0, 0, 0, 0, false
	}
	var n [4]float64
	for i, f := range fields {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		n[i] = val
	}
	if n[2] <= 0 || n[3] <= 0 {
		return 0, 0, 0, 0, false
	}
	return n[0], n[1], n[2], n[3], true
}

// Render rasterizes icon onto a transparent w×h canvas. Width and height
// are scaled independently, so a non-square viewBox is stretched to fill
// the canvas. The viewBox origin maps to the canvas origin.
func Render(icon *oksvg.SvgIcon, w, h int) *image.RGBA {
	vb := icon.ViewBox
	icon.Transform = rasterx.Identity.
		Scale(float64(w)/vb.W, float64(h)/vb.H).
		Translate(-vb.X, -vb.Y)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// ConvertFile renders the SVG at src into a w×h PNG at dst. The source is
// read fresh on every call. dst is replaced atomically, so a failed
// conversion never leaves a truncated PNG behind.
func ConvertFile(src, dst string, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid target size %dx%d", w, h)
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open svg: %w", err)
	}
	defer f.Close()

	icon, err := Decode(f)
	if err != nil {
		return fmt.Errorf("parse svg %s: %w", src, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, Render(icon, w, h)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := paths.AtomicWrite(dst, buf.Bytes()); err != nil {
		return fmt.Errorf("write png %s: %w", dst, err)
	}
	return nil
}
