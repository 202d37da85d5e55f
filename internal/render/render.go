package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/wonny/spacexdash/backend/pkg/config"
)

// ErrUnknownFormat is returned for image formats other than png and svg
var ErrUnknownFormat = errors.New("unknown chart format")

// Format is a rendered chart image format
type Format string

// Supported formats
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ContentType returns the HTTP content type of the format
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// palette is the categorical color cycle shared by both charts
var palette = []drawing.Color{
	drawing.ColorFromHex("636efa"),
	drawing.ColorFromHex("ef553b"),
	drawing.ColorFromHex("00cc96"),
	drawing.ColorFromHex("ab63fa"),
	drawing.ColorFromHex("ffa15a"),
	drawing.ColorFromHex("19d3f3"),
	drawing.ColorFromHex("ff6692"),
	drawing.ColorFromHex("b6e880"),
}

func paletteColor(i int) drawing.Color {
	return palette[i%len(palette)]
}

// Renderer draws dashboard aggregates as chart images
// ⭐ SSOT: 차트 이미지 생성은 여기서만
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer with the configured image size
func NewRenderer(cfg config.ChartConfig) *Renderer {
	return &Renderer{width: cfg.Width, height: cfg.Height}
}

// Size returns the image width and height in pixels
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// write renders through the go-chart provider of f
func write(w io.Writer, f Format, draw func(chart.RendererProvider, io.Writer) error) error {
	if err := draw(f.provider(), w); err != nil {
		return fmt.Errorf("render %s: %w", f, err)
	}
	return nil
}
