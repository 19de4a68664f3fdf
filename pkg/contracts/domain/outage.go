package domain

// OutageRecord represents one row of the raw outage schedule table
// (휴전일람표) after positional extraction. All fields carry the cell text
// as-is, trimmed of surrounding whitespace.
type OutageRecord struct {
	PrimarySite   string `json:"primary_site"`
	SecondarySite string `json:"secondary_site"`
	Substation    string `json:"substation"`
	Voltage       string `json:"voltage"`
	Equipment     string `json:"equipment"`
	WorkName      string `json:"work_name"`
	WorkSummary   string `json:"work_summary"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Category      string `json:"category"`
	Department    string `json:"department"`
	Supervisor    string `json:"supervisor"`
	Contractor    string `json:"contractor"`
	Procedure     string `json:"procedure"`
	OutageType    string `json:"outage_type"`
}

// Classification distinguishes de-energized outage work from live-line work.
type Classification string

const (
	ClassificationOutage   Classification = "outage"
	ClassificationLiveWork Classification = "live-work"
)

// Label returns the report display text for the classification.
func (c Classification) Label() string {
	if c == ClassificationLiveWork {
		return "활선"
	}
	return "휴전"
}

// ReportRecord is a report-ready row derived from an OutageRecord.
// Seq is assigned only after final ordering and always forms the
// contiguous range 1..N across the report.
type ReportRecord struct {
	Classification Classification `json:"classification"`
	Seq            int            `json:"seq"`
	Start          string         `json:"start"`
	End            string         `json:"end"`
	SecondarySite  string         `json:"secondary_site"`
	Substation     string         `json:"substation"`
	Voltage        string         `json:"voltage"`
	Equipment      string         `json:"equipment"`
	WorkSummary    string         `json:"work_summary"`
	Category2      string         `json:"category2"`
	Department     string         `json:"department"`
	Supervisor     string         `json:"supervisor"`
	SafetyManager  string         `json:"safety_manager"`
}
