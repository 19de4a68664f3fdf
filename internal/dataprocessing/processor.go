package dataprocessing

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"outagecli/internal/config"
	"outagecli/pkg/contracts/domain"
)

// startTimeLayouts are the accepted start/end timestamp layouts, most
// specific first.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// sortableRecord pairs a report record with its precomputed sort key.
type sortableRecord struct {
	record   domain.ReportRecord
	siteRank int
	start    time.Time
	hasStart bool
}

// Transform filters the extracted records down to the allowed secondary
// sites, classifies them as outage or live-line work, orders them
// (outage group first, then by site rank and start time within each
// group, stable) and assigns the final 1..N sequence numbers.
// Returns domain.ErrNoAllowedSites when the filter drops everything.
func Transform(records []domain.OutageRecord) ([]domain.ReportRecord, error) {
	var outage, live []sortableRecord

	for _, rec := range records {
		rank, allowed := config.SecondarySiteRank[rec.SecondarySite]
		if !allowed {
			continue
		}

		classification := domain.ClassificationOutage
		if rec.Procedure == config.LiveWorkProcedure {
			classification = domain.ClassificationLiveWork
		}

		start, hasStart := parseStartTime(rec.Start)
		sr := sortableRecord{
			record: domain.ReportRecord{
				Classification: classification,
				Start:          rec.Start,
				End:            rec.End,
				SecondarySite:  rec.SecondarySite,
				Substation:     rec.Substation,
				Voltage:        rec.Voltage,
				Equipment:      rec.Equipment,
				WorkSummary:    rec.WorkSummary,
				Category2:      rec.Category,
				Department:     rec.Department,
				Supervisor:     rec.Supervisor,
				SafetyManager:  "",
			},
			siteRank: rank,
			start:    start,
			hasStart: hasStart,
		}

		if classification == domain.ClassificationLiveWork {
			live = append(live, sr)
		} else {
			outage = append(outage, sr)
		}
	}

	dropped := len(records) - len(outage) - len(live)
	if dropped > 0 {
		slog.Debug("dropped records outside allowed secondary sites",
			slog.Int("dropped", dropped),
			slog.Int("kept", len(outage)+len(live)))
	}

	if len(outage)+len(live) == 0 {
		return nil, domain.ErrNoAllowedSites
	}

	sortGroup(outage)
	sortGroup(live)

	result := make([]domain.ReportRecord, 0, len(outage)+len(live))
	for _, sr := range outage {
		result = append(result, sr.record)
	}
	for _, sr := range live {
		result = append(result, sr.record)
	}
	for i := range result {
		result[i].Seq = i + 1
	}
	return result, nil
}

// sortGroup orders one classification group by (site rank, start time),
// stably. Records without a parseable start time sort after all records
// that have one.
func sortGroup(group []sortableRecord) {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i], group[j]
		if a.siteRank != b.siteRank {
			return a.siteRank < b.siteRank
		}
		if a.hasStart != b.hasStart {
			return a.hasStart
		}
		if !a.hasStart {
			return false
		}
		return a.start.Before(b.start)
	})
}

// parseStartTime parses a schedule timestamp permissively. The second
// return value reports whether parsing succeeded.
func parseStartTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByDate keeps records whose outage span covers the target date.
// This stage is opt-in: only the CLI path enables it, the server paths
// never call it. Records whose start or end date cannot be parsed are
// skipped. When nothing falls on the target date the full input is
// returned unchanged, matching the legacy converter.
func FilterByDate(records []domain.OutageRecord, target time.Time) []domain.OutageRecord {
	targetDay := target.Truncate(24 * time.Hour)

	var filtered []domain.OutageRecord
	for _, rec := range records {
		start, ok := parseDatePart(rec.Start)
		if !ok {
			continue
		}
		end, ok := parseDatePart(rec.End)
		if !ok {
			continue
		}
		if !targetDay.Before(start) && !targetDay.After(end) {
			filtered = append(filtered, rec)
		}
	}

	if len(filtered) == 0 {
		slog.Warn("no records on target date, using full data set",
			slog.String("target_date", target.Format("2006-01-02")),
			slog.Int("records", len(records)))
		return records
	}
	return filtered
}

// parseDatePart parses the date portion of a schedule timestamp.
func parseDatePart(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if i := strings.IndexByte(value, ' '); i >= 0 {
		value = value[:i]
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
