package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/jung-kurt/gofpdf"
)

const gridColumns = 12

var (
	textColor   = color.Color{Red: 38, Green: 38, Blue: 34}
	headerColor = color.Color{Red: 41, Green: 128, Blue: 185}
	mutedColor  = color.Color{Red: 121, Green: 119, Blue: 109}
)

func init() {
	// Font and image objects are written in map order unless sorted.
	gofpdf.SetDefaultCatalogSort(true)
}

// renderPDF draws a Document on A4 portrait pages. created is the only time
// written into the file.
func renderPDF(doc Document, created time.Time) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetCreationDate(created)
	m.SetPageMargins(14, 15, 14)

	m.Row(12, func() {
		m.Col(gridColumns, func() {
			m.Text(doc.Title, props.Text{
				Size:  20,
				Style: consts.Bold,
				Align: consts.Center,
				Color: textColor,
			})
		})
	})
	for _, line := range doc.Header {
		m.Row(5, func() {
			m.Col(gridColumns, func() {
				m.Text(line, props.Text{
					Size:  10,
					Align: consts.Center,
					Color: mutedColor,
				})
			})
		})
	}
	m.Row(6, func() {})

	for _, b := range doc.Body {
		switch b.Kind {
		case BlockTable:
			renderTable(m, b.Table)
			m.Row(4, func() {})
		case BlockHeading:
			m.Row(9, func() {
				m.Col(gridColumns, func() {
					m.Text(b.Text, props.Text{
						Top:   3,
						Size:  12,
						Style: consts.Bold,
						Color: textColor,
					})
				})
			})
		default:
			renderText(m, b)
		}
	}

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderText(m pdf.Maroto, b Block) {
	p := props.Text{
		Size:  10,
		Color: textColor,
	}
	if b.Bold {
		p.Style = consts.Bold
	}
	if b.Indent {
		p.Left = 6
	}
	if b.Centered {
		p.Align = consts.Center
	}
	m.Row(6, func() {
		m.Col(gridColumns, func() {
			m.Text(b.Text, p)
		})
	})
}

func renderTable(m pdf.Maroto, t *Table) {
	if t == nil || len(t.Header) == 0 {
		return
	}
	width := uint(gridColumns / len(t.Header))
	if width == 0 {
		width = 1
	}

	m.Row(7, func() {
		for _, h := range t.Header {
			m.Col(width, func() {
				m.Text(h, props.Text{
					Top:   1,
					Size:  9,
					Style: consts.Bold,
					Align: consts.Center,
					Color: headerColor,
				})
			})
		}
	})
	for _, r := range t.Rows {
		m.Row(6, func() {
			for _, v := range r {
				m.Col(width, func() {
					m.Text(v, props.Text{
						Top:   1,
						Size:  9,
						Align: consts.Center,
						Color: textColor,
					})
				})
			}
		})
	}
}
