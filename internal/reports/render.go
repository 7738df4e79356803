package reports

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cardWidth   = 560
	cardPadding = 24
	lineGap     = 6
)

var (
	cardBackground = color.RGBA{0xF7, 0xFA, 0xFC, 0xFF}
	cardAccent     = color.RGBA{0x2B, 0x6C, 0xB0, 0xFF}
	cardText       = color.RGBA{0x1A, 0x20, 0x2C, 0xFF}
	cardMuted      = color.RGBA{0x71, 0x80, 0x96, 0xFF}
)

type cardLine struct {
	text string
	col  color.Color
}

// RenderPNG draws the report as a PNG card, disclaimer included.
func RenderPNG(w io.Writer, r Report) error {
	img, err := renderCard(r)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding report card: %w", err)
	}
	return nil
}

func renderCard(r Report) (*image.RGBA, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("cannot render report without id")
	}

	face := basicfont.Face7x13
	maxWidth := cardWidth - 2*cardPadding
	lines := cardLines(r, face, maxWidth)

	lineHeight := face.Metrics().Height.Ceil() + lineGap
	height := 2*cardPadding + len(lines)*lineHeight + 4

	img := image.NewRGBA(image.Rect(0, 0, cardWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cardBackground), image.Point{}, draw.Src)
	// accent bar on the left edge
	draw.Draw(img, image.Rect(0, 0, 6, height), image.NewUniform(cardAccent), image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: img, Face: face}
	y := cardPadding + face.Metrics().Ascent.Ceil()
	for _, l := range lines {
		drawer.Src = image.NewUniform(l.col)
		drawer.Dot = fixed.P(cardPadding, y)
		drawer.DrawString(l.text)
		y += lineHeight
	}
	return img, nil
}

func cardLines(r Report, face font.Face, maxWidth int) []cardLine {
	var out []cardLine
	add := func(text string, col color.Color) {
		for _, l := range wrapText(face, text, maxWidth) {
			out = append(out, cardLine{text: l, col: col})
		}
	}

	add("Health Summary - "+r.DisplayDate(), cardAccent)
	if r.Name != "" {
		add("Prepared for "+r.Name, cardMuted)
	}
	add("", cardText)

	symptoms := strings.Join(r.Symptoms, ", ")
	if symptoms == "" {
		symptoms = "none reported"
	}
	add("Symptoms: "+symptoms, cardText)
	if r.OtherSymptoms != "" {
		add("Other: "+r.OtherSymptoms, cardText)
	}
	if r.CurePreference != "" {
		add("Cure preference: "+r.CurePreference, cardText)
	}
	if r.Willingness != "" {
		add("Willingness: "+r.Willingness, cardText)
	}
	add("", cardText)

	add("Recommendations:", cardAccent)
	for _, rec := range r.Recommendations {
		add("- "+rec, cardText)
	}
	add("", cardText)
	add(Disclaimer, cardMuted)
	return out
}

// wrapText splits text into lines no wider than maxWidth pixels. A single word wider
// than maxWidth gets its own line.
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
