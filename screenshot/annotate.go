// Package screenshot draws debugging overlays on a page screenshot: a
// bounding box and hierarchical-id label for every node a compression pass
// emitted (SPEC_FULL.md §C). It exists purely as a visual aid for
// inspecting what Extract saw — it has no bearing on the rendered text an
// agent consumes.
package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/CodingLucasLi/Clawome/compress"
)

// AnnotationConfig configures how annotations are drawn.
type AnnotationConfig struct {
	// BorderWidth is the width of bounding box borders in pixels.
	BorderWidth float64

	// FontSize is the point size of the hid label text.
	FontSize float64

	// ShowLabels determines whether to draw hid labels at all.
	ShowLabels bool

	// ShowLabelsOnlyForUnlabeled draws labels only for nodes without text.
	ShowLabelsOnlyForUnlabeled bool

	LinkColor      color.RGBA
	ButtonColor    color.RGBA
	InputColor     color.RGBA
	DefaultColor   color.RGBA
	LabelBgColor   color.RGBA
	LabelTextColor color.RGBA
}

// DefaultAnnotationConfig returns sensible defaults for annotations.
func DefaultAnnotationConfig() AnnotationConfig {
	return AnnotationConfig{
		BorderWidth:                2,
		FontSize:                   12,
		ShowLabels:                 true,
		ShowLabelsOnlyForUnlabeled: false,
		LinkColor:                  color.RGBA{R: 76, G: 175, B: 80, A: 255},
		ButtonColor:                color.RGBA{R: 33, G: 150, B: 243, A: 255},
		InputColor:                 color.RGBA{R: 255, G: 152, B: 0, A: 255},
		DefaultColor:               color.RGBA{R: 156, G: 39, B: 176, A: 255},
		LabelBgColor:               color.RGBA{R: 0, G: 0, B: 0, A: 200},
		LabelTextColor:             color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Annotate draws a bounding box and hid label for every node in flat that
// carries a non-empty Rect onto imgData, returning the re-encoded image in
// its original format.
func Annotate(imgData []byte, flat []compress.FlatNode, cfg AnnotationConfig) ([]byte, error) {
	if len(flat) == 0 {
		return imgData, nil
	}

	img, format, err := image.Decode(bytes.NewReader(imgData))
	if err != nil {
		return nil, fmt.Errorf("screenshot: decode image for annotation: %w", err)
	}

	dc := gg.NewContextForImage(img)
	dc.SetLineWidth(cfg.BorderWidth)

	for _, fn := range flat {
		n := fn.Node
		if n.Rect.Empty() {
			continue
		}
		if cfg.ShowLabelsOnlyForUnlabeled && n.Text != "" {
			drawBox(dc, n, cfg)
			continue
		}
		drawBox(dc, n, cfg)
		if cfg.ShowLabels {
			drawHidLabel(dc, fn.Hid, n, cfg)
		}
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dc.Image())
	default:
		err = jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, fmt.Errorf("screenshot: encode annotated image: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBox(dc *gg.Context, n *compress.Node, cfg AnnotationConfig) {
	c := colorFor(n, cfg)
	dc.SetColor(c)
	dc.DrawRectangle(n.Rect.X, n.Rect.Y, n.Rect.W, n.Rect.H)
	dc.Stroke()
}

func drawHidLabel(dc *gg.Context, hid string, n *compress.Node, cfg AnnotationConfig) {
	label := hid
	const pad = 3.0
	dc.SetFontFace(basicfont.Face7x13)
	w, h := dc.MeasureString(label)

	x := n.Rect.X
	y := n.Rect.Y - h - 2*pad
	if y < 0 {
		y = n.Rect.Y
	}

	dc.SetColor(cfg.LabelBgColor)
	dc.DrawRectangle(x, y, w+2*pad, h+2*pad)
	dc.Fill()

	dc.SetColor(cfg.LabelTextColor)
	dc.DrawString(label, x+pad, y+pad+h*0.8)
}

func colorFor(n *compress.Node, cfg AnnotationConfig) color.RGBA {
	switch n.Tag {
	case "a":
		return cfg.LinkColor
	case "button":
		return cfg.ButtonColor
	case "input", "textarea", "select":
		return cfg.InputColor
	default:
		if n.HasActions() {
			return cfg.ButtonColor
		}
		return cfg.DefaultColor
	}
}

// AnnotateForLLM annotates a screenshot with labels shown on every node.
func AnnotateForLLM(imgData []byte, flat []compress.FlatNode) ([]byte, error) {
	return Annotate(imgData, flat, DefaultAnnotationConfig())
}

// AnnotateUnlabeledOnly annotates a screenshot showing labels only on nodes
// that carry no text of their own — icons and bare interactive controls.
func AnnotateUnlabeledOnly(imgData []byte, flat []compress.FlatNode) ([]byte, error) {
	cfg := DefaultAnnotationConfig()
	cfg.ShowLabelsOnlyForUnlabeled = true
	return Annotate(imgData, flat, cfg)
}
