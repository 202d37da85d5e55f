package render

import (
	"fmt"
	"html"
	"image"
	"image/color"
	"image/png"
	"io"
)

var blankBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}

// blank writes an empty placeholder image for charts with nothing to draw
func (r *Renderer) blank(w io.Writer, title string, f Format) error {
	if f == FormatSVG {
		_, err := fmt.Fprintf(w,
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
				`<rect width="100%%" height="100%%" fill="#fafafa"/>`+
				`<text x="50%%" y="24" text-anchor="middle" font-family="sans-serif" font-size="14">%s</text>`+
				`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="12" fill="#888">No data</text>`+
				`</svg>`,
			r.width, r.height, html.EscapeString(title))
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetRGBA(x, y, blankBackground)
		}
	}
	return png.Encode(w, img)
}
