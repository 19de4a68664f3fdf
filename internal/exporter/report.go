package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"outagecli/internal/config"
	"outagecli/pkg/contracts/domain"
)

// dataStartRow is the first worksheet row holding record data; rows 1-5
// are the title block and the two-row header.
const dataStartRow = 6

// headerMerge declares one merged cell range of the header block with its
// top-left value.
type headerMerge struct {
	from, to string
	value    string
}

var headerLayout = []headerMerge{
	{"A4", "A5", "구분"},
	{"B4", "B5", "순번"},
	{"C4", "F4", "휴전일시"},
	{"G4", "G5", "전압"},
	{"H4", "H5", "설비명"},
	{"I4", "I5", "공사개요"},
	{"J4", "J5", "구분"},
	{"K4", "K5", "주관부서"},
	{"L4", "L5", "감독자"},
	{"M4", "M5", "안전관리자"},
}

// subHeaders are the row-5 labels under the 휴전일시 super-header.
var subHeaders = map[string]string{
	"C5": "시작",
	"D5": "종료",
	"E5": "2차",
	"F5": "변전소",
}

// Build renders the ordered report records into the daily outage plan
// workbook and returns the serialized xlsx bytes. The layout is a pure
// projection of the record list: the sequence column holds each record's
// stored sequence number, so content depends only on the input order.
func Build(records []domain.ReportRecord, reportDate time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	styles, err := newReportStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to register styles: %w", err)
	}

	if err := writeTitle(f, sheet, styles, reportDate); err != nil {
		return nil, err
	}
	if err := writeHeader(f, sheet, styles); err != nil {
		return nil, err
	}
	if err := writeRecords(f, sheet, styles, records); err != nil {
		return nil, err
	}
	if err := applyColumnWidths(f, sheet); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTitle(f *excelize.File, sheet string, styles *reportStyles, reportDate time.Time) error {
	if err := f.MergeCell(sheet, "A1", "M1"); err != nil {
		return fmt.Errorf("failed to merge title row: %w", err)
	}
	title := fmt.Sprintf(config.ReportTitleFormat, reportDate.Format(config.ReportDateFormat))
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	return f.SetCellStyle(sheet, "A1", "M1", styles.title)
}

func writeHeader(f *excelize.File, sheet string, styles *reportStyles) error {
	for _, m := range headerLayout {
		if err := f.MergeCell(sheet, m.from, m.to); err != nil {
			return fmt.Errorf("failed to merge header %s:%s: %w", m.from, m.to, err)
		}
		if err := f.SetCellValue(sheet, m.from, m.value); err != nil {
			return fmt.Errorf("failed to write header %s: %w", m.from, err)
		}
	}
	for cell, value := range subHeaders {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write sub-header %s: %w", cell, err)
		}
	}
	return f.SetCellStyle(sheet, "A4", "M5", styles.header)
}

func writeRecords(f *excelize.File, sheet string, styles *reportStyles, records []domain.ReportRecord) error {
	for i, rec := range records {
		row := dataStartRow + i

		values := []interface{}{
			rec.Classification.Label(),
			rec.Seq,
			rec.Start,
			rec.End,
			rec.SecondarySite,
			rec.Substation,
			rec.Voltage,
			rec.Equipment,
			rec.WorkSummary,
			rec.Category2,
			rec.Department,
			rec.Supervisor,
			rec.SafetyManager,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("failed to write record row %d: %w", row, err)
		}

		category, seq, body := styles.category, styles.seq, styles.body
		if rec.Classification == domain.ClassificationLiveWork {
			category, seq, body = styles.categoryLive, styles.seqLive, styles.bodyLive
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), category); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), seq); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("M%d", row), body); err != nil {
			return err
		}
	}
	return nil
}

func applyColumnWidths(f *excelize.File, sheet string) error {
	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}
	return nil
}
