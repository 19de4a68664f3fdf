package config

// Application constants for the outage plan report converter
const (
	// Application Info
	AppName    = "Outage Plan Converter"
	AppVersion = "1.0.0"

	// Report Output
	// Generated filename: prefix + report date (MM.DD) + extension,
	// e.g. 일일_휴전계획_보고_08.25.xlsx
	ReportFilePrefix    = "일일_휴전계획_보고_"
	ReportFileExtension = ".xlsx"
	ReportDateFormat    = "01.02"

	// Report title, rendered with the report date in MM.DD form
	ReportTitleFormat = "일일 휴전계획 보고(%s)"

	// Live-line work marker in the procedure column of the source table
	LiveWorkProcedure = "활선작업"

	// Upload handling
	UploadFieldName   = "file"
	XLSXContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	BinaryResponseKey = "X-Response-Type"
)

// AllowedSecondarySites is the fixed set of regional sub-offices included
// in the daily report, in rank order. Records from any other office are
// dropped by the transformer.
var AllowedSecondarySites = []string{"직할", "강릉", "동해", "원주", "태백"}

// SecondarySiteRank maps each allowed secondary site to its sort rank.
// Anything else cannot survive the filter but defaults to 999 defensively.
var SecondarySiteRank = map[string]int{
	"직할": 1,
	"강릉": 2,
	"동해": 3,
	"원주": 4,
	"태백": 5,
}

// DefaultSiteRank is the rank used for sites missing from SecondarySiteRank.
const DefaultSiteRank = 999
