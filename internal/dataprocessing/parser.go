package dataprocessing

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"outagecli/pkg/contracts/domain"
)

// headerRowCount is the number of leading rows (title, header, subheader)
// discarded before shaping.
const headerRowCount = 3

// minRowCells is the minimum cell count a row must have to map onto the
// positional column layout.
const minRowCells = 15

// columnSpec declares one entry of the positional column contract of the
// source table. Guarded columns tolerate short rows and default to the
// empty string; given the minRowCells gate this guard is dead in practice
// but mirrors the upstream export contract.
type columnSpec struct {
	index   int
	field   string
	guarded bool
}

// columnLayout is the fixed positional schema of the outage schedule
// table. Order drift upstream fails the minRowCells gate loudly instead of
// silently misassigning fields.
var columnLayout = []columnSpec{
	{0, "primary_site", false},
	{1, "secondary_site", false},
	{2, "substation", false},
	{3, "voltage", false},
	{4, "equipment", false},
	{5, "work_name", false},
	{6, "work_summary", false},
	{7, "start", false},
	{8, "end", false},
	{9, "category", false},
	{10, "department", false},
	{11, "supervisor", false},
	{12, "contractor", true},
	{13, "procedure", true},
	{14, "outage_type", true},
}

// parseState is the scanner state of the table extractor.
type parseState int

const (
	stateOutside parseState = iota
	stateInTable
	stateInRow
	stateInCell
)

// Parse decodes the raw schedule bytes and extracts the outage records
// from the embedded HTML table. Returns domain.ErrNoData when fewer than
// headerRowCount rows are present or no row survives shaping.
func Parse(raw []byte) ([]domain.OutageRecord, error) {
	text, err := DecodeContent(raw)
	if err != nil {
		return nil, err
	}

	rows := scanTableRows(text)
	if len(rows) < headerRowCount {
		return nil, domain.ErrNoData
	}

	records := make([]domain.OutageRecord, 0, len(rows)-headerRowCount)
	for _, row := range rows[headerRowCount:] {
		if len(row) < minRowCells {
			continue
		}
		records = append(records, shapeRow(row))
	}

	slog.Debug("parsed outage schedule",
		slog.Int("total_rows", len(rows)),
		slog.Int("records", len(records)))

	if len(records) == 0 {
		return nil, domain.ErrNoData
	}
	return records, nil
}

// scanTableRows walks the HTML token stream with an explicit state machine
// over {outside, in-table, in-row, in-cell}. Only the outermost table is
// tracked; tags of nested tables are ignored so their text concatenates
// into the enclosing cell. td and th are equivalent.
func scanTableRows(text string) [][]string {
	z := html.NewTokenizer(strings.NewReader(text))

	var (
		state      = stateOutside
		tableDepth int
		rows       [][]string
		currentRow []string
		cell       strings.Builder
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; either way the scan is done
			return rows

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "table":
				tableDepth++
				if state == stateOutside {
					state = stateInTable
				}
			case "tr":
				if state == stateInTable && tableDepth == 1 {
					state = stateInRow
					currentRow = nil
				}
			case "td", "th":
				if state == stateInRow && tableDepth == 1 {
					state = stateInCell
					cell.Reset()
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "table":
				if tableDepth > 0 {
					tableDepth--
				}
				if tableDepth == 0 {
					state = stateOutside
				}
			case "tr":
				if tableDepth == 1 && (state == stateInRow || state == stateInCell) {
					if len(currentRow) > 0 {
						rows = append(rows, currentRow)
					}
					state = stateInTable
				}
			case "td", "th":
				if state == stateInCell && tableDepth == 1 {
					currentRow = append(currentRow, strings.TrimSpace(cell.String()))
					state = stateInRow
				}
			}

		case html.TextToken:
			if state == stateInCell {
				cell.Write(z.Text())
			}
		}
	}
}

// shapeRow maps a raw row onto an OutageRecord via the declared column
// layout. Caller guarantees len(row) >= minRowCells for unguarded columns.
func shapeRow(row []string) domain.OutageRecord {
	var rec domain.OutageRecord
	for _, col := range columnLayout {
		value := ""
		if col.index < len(row) {
			value = row[col.index]
		} else if !col.guarded {
			// unreachable behind the minRowCells gate
			continue
		}

		switch col.field {
		case "primary_site":
			rec.PrimarySite = value
		case "secondary_site":
			rec.SecondarySite = value
		case "substation":
			rec.Substation = value
		case "voltage":
			rec.Voltage = value
		case "equipment":
			rec.Equipment = value
		case "work_name":
			rec.WorkName = value
		case "work_summary":
			rec.WorkSummary = value
		case "start":
			rec.Start = value
		case "end":
			rec.End = value
		case "category":
			rec.Category = value
		case "department":
			rec.Department = value
		case "supervisor":
			rec.Supervisor = value
		case "contractor":
			rec.Contractor = value
		case "procedure":
			rec.Procedure = value
		case "outage_type":
			rec.OutageType = value
		}
	}
	return rec
}
