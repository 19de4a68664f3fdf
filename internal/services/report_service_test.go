package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"outagecli/pkg/contracts/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 8, 25, 14, 0, 0, 0, time.UTC)
	}
}

func scheduleHTML(rows ...[]string) []byte {
	var b strings.Builder
	b.WriteString("<table><tr><td>제목</td></tr><tr><td>헤더</td></tr><tr><td>서브헤더</td></tr>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, "<td>%s</td>", cell)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return []byte(b.String())
}

func fullRow(site, procedure string) []string {
	return []string{
		"강원본부", site, "중앙변전소", "154kV", "송전선로 #1",
		"철탑 보강공사", "애자 교체", "2025-08-25 09:00", "2025-08-25 18:00",
		"당일", "송전운영부", "김감독", "한전KPS", procedure, "전체휴전",
	}
}

func TestReportService_Convert(t *testing.T) {
	svc := NewReportService(testLogger(), fixedClock())

	content := scheduleHTML(
		fullRow("직할", ""),
		fullRow("강릉", "활선작업"),
		fullRow("제주", ""),
	)

	result, err := svc.Convert(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)
	assert.Equal(t, "일일_휴전계획_보고_08.25.xlsx", result.Filename)
	require.NotEmpty(t, result.File)

	f, err := excelize.OpenReader(bytes.NewReader(result.File))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "일일 휴전계획 보고(08.25)", title)
}

func TestReportService_Convert_EmptyInput(t *testing.T) {
	svc := NewReportService(testLogger(), fixedClock())

	_, err := svc.Convert(context.Background(), []byte("<html><body>no table</body></html>"))
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestReportService_Convert_EmptyAfterFilter(t *testing.T) {
	svc := NewReportService(testLogger(), fixedClock())

	_, err := svc.Convert(context.Background(), scheduleHTML(fullRow("제주", "")))
	assert.ErrorIs(t, err, domain.ErrNoAllowedSites)
}

func TestFilename(t *testing.T) {
	date := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "일일_휴전계획_보고_01.02.xlsx", Filename(date))
}
