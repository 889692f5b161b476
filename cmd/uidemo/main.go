// Command uidemo renders a matrix of checkbox styles to a PNG.
//
// Columns are the four checkmark styles; row pairs are the two border styles,
// unchecked on the first row of each pair and checked on the second.
package main

import (
	"flag"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/gg"

	uielements "github.com/techiesanjaypathak/UIElements"
)

func main() {
	var (
		cell   = flag.Int("cell", 96, "cell size in pixels")
		margin = flag.Int("margin", 16, "margin between cells in pixels")
		output = flag.String("output", "checkboxes.png", "output file")
		theme  = flag.String("theme", "", "optional yaml theme file applied to every cell")
	)
	flag.Parse()

	checkmarks := []uielements.CheckmarkStyle{
		uielements.CheckmarkSquare,
		uielements.CheckmarkCircle,
		uielements.CheckmarkCross,
		uielements.CheckmarkTick,
	}
	borders := []uielements.BorderStyle{
		uielements.BorderSquare,
		uielements.BorderCircle,
	}

	var cellTheme *uielements.Theme
	if *theme != "" {
		t, err := uielements.LoadTheme(*theme)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		cellTheme = &t
	}

	cols := len(checkmarks)
	rows := len(borders) * 2
	stride := *cell + *margin
	sheet := image.NewRGBA(image.Rect(0, 0, *margin+cols*stride, *margin+rows*stride))

	for bi, border := range borders {
		for checkedRow := range 2 {
			for ci, checkmark := range checkmarks {
				box := uielements.NewCheckbox(
					uielements.WithBorderStyle(border),
					uielements.WithCheckmarkStyle(checkmark),
					uielements.WithBorderCornerRadius(6),
					uielements.WithHapticFeedback(false),
				)
				if cellTheme != nil {
					if err := cellTheme.Apply(box); err != nil {
						log.Fatalf("Failed to apply theme: %v", err)
					}
				}
				box.SetChecked(checkedRow == 1)

				cellImg := renderCell(box, *cell)
				x := *margin + ci*stride
				y := *margin + (bi*2+checkedRow)*stride
				r := image.Rect(x, y, x+*cell, y+*cell)
				draw.Draw(sheet, r, cellImg, image.Point{}, draw.Over)
			}
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, sheet); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Demo saved to %s (%d cells)\n", *output, cols*rows)
}

// renderCell draws one checkbox into its own context so the glyph geometry
// sees zero-origin bounds, the way a host surface presents them.
func renderCell(box *uielements.Checkbox, size int) image.Image {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	dc.ClearWithColor(box.CheckboxBackgroundColor())
	box.Draw(dc, uielements.NewRect(0, 0, float64(size), float64(size)))
	return dc.Image()
}
