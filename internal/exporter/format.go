package exporter

import (
	"github.com/xuri/excelize/v2"
)

const (
	headerFillColor   = "D3D3D3"
	liveWorkFillColor = "FFFF99"
)

// columnWidths holds the fixed width of each of the 13 report columns,
// sized to the expected content per column.
var columnWidths = []float64{8, 6, 18, 18, 10, 12, 8, 25, 40, 8, 15, 20, 12}

// reportStyles caches the style IDs used by the report layout. A fresh set
// is created per workbook; excelize style IDs are file-scoped.
type reportStyles struct {
	title        int
	header       int
	seq          int
	seqLive      int
	category     int
	categoryLive int
	body         int
	bodyLive     int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

// newReportStyles registers all cell styles on the workbook.
func newReportStyles(f *excelize.File) (*reportStyles, error) {
	var s reportStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return nil, err
	}

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      solidFill(headerFillColor),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	}); err != nil {
		return nil, err
	}

	seq := excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	}
	if s.seq, err = f.NewStyle(&seq); err != nil {
		return nil, err
	}
	seqLive := seq
	seqLive.Fill = solidFill(liveWorkFillColor)
	if s.seqLive, err = f.NewStyle(&seqLive); err != nil {
		return nil, err
	}

	category := excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	}
	if s.category, err = f.NewStyle(&category); err != nil {
		return nil, err
	}
	categoryLive := category
	categoryLive.Fill = solidFill(liveWorkFillColor)
	if s.categoryLive, err = f.NewStyle(&categoryLive); err != nil {
		return nil, err
	}

	body := excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	}
	if s.body, err = f.NewStyle(&body); err != nil {
		return nil, err
	}
	bodyLive := body
	bodyLive.Fill = solidFill(liveWorkFillColor)
	if s.bodyLive, err = f.NewStyle(&bodyLive); err != nil {
		return nil, err
	}

	return &s, nil
}
