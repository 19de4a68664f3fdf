package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outagecli/internal/config"
	"outagecli/pkg/contracts/domain"
)

func outageRecord(secondarySite, start, procedure string) domain.OutageRecord {
	return domain.OutageRecord{
		PrimarySite:   "강원본부",
		SecondarySite: secondarySite,
		Substation:    "중앙변전소",
		Voltage:       "154kV",
		Equipment:     "송전선로 #1",
		WorkName:      "철탑 보강공사",
		WorkSummary:   "애자 교체",
		Start:         start,
		End:           "2025-08-26 18:00",
		Category:      "당일",
		Department:    "송전운영부",
		Supervisor:    "김감독",
		Procedure:     procedure,
	}
}

func TestTransform_FiltersDisallowedSites(t *testing.T) {
	// one allowed live-work record, one disallowed site
	records := []domain.OutageRecord{
		outageRecord("직할", "2025-08-25 09:00", "활선작업"),
		outageRecord("제주", "2025-08-25 08:00", ""),
	}

	result, err := Transform(records)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, domain.ClassificationLiveWork, result[0].Classification)
	assert.Equal(t, 1, result[0].Seq)
	assert.Equal(t, "직할", result[0].SecondarySite)
}

func TestTransform_OutageGroupPrecedesLiveWork(t *testing.T) {
	// live-work starts earlier but the outage group still comes first
	records := []domain.OutageRecord{
		outageRecord("직할", "2025-08-25 06:00", "활선작업"),
		outageRecord("직할", "2025-08-25 14:00", ""),
	}

	result, err := Transform(records)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.ClassificationOutage, result[0].Classification)
	assert.Equal(t, 1, result[0].Seq)
	assert.Equal(t, domain.ClassificationLiveWork, result[1].Classification)
	assert.Equal(t, 2, result[1].Seq)
}

func TestTransform_AllFilteredOut(t *testing.T) {
	records := []domain.OutageRecord{
		outageRecord("제주", "2025-08-25 09:00", ""),
		outageRecord("부산", "2025-08-25 10:00", ""),
	}

	result, err := Transform(records)
	assert.ErrorIs(t, err, domain.ErrNoAllowedSites)
	assert.Nil(t, result)
}

func TestTransform_SortsBySiteRankThenStartTime(t *testing.T) {
	records := []domain.OutageRecord{
		outageRecord("태백", "2025-08-25 07:00", ""),
		outageRecord("강릉", "2025-08-25 15:00", ""),
		outageRecord("강릉", "2025-08-25 09:00", ""),
		outageRecord("직할", "2025-08-25 23:00", ""),
	}

	result, err := Transform(records)
	require.NoError(t, err)
	require.Len(t, result, 4)

	assert.Equal(t, "직할", result[0].SecondarySite)
	assert.Equal(t, "강릉", result[1].SecondarySite)
	assert.Equal(t, "2025-08-25 09:00", result[1].Start)
	assert.Equal(t, "강릉", result[2].SecondarySite)
	assert.Equal(t, "2025-08-25 15:00", result[2].Start)
	assert.Equal(t, "태백", result[3].SecondarySite)
}

func TestTransform_UnparseableStartSortsLast(t *testing.T) {
	records := []domain.OutageRecord{
		outageRecord("동해", "미정", ""),
		outageRecord("동해", "2025-08-25 22:00", ""),
	}

	result, err := Transform(records)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "2025-08-25 22:00", result[0].Start)
	assert.Equal(t, "미정", result[1].Start)
}

func TestTransform_StabilityOnEqualKeys(t *testing.T) {
	// identical site and start time: original relative order is kept
	a := outageRecord("원주", "2025-08-25 09:00", "")
	a.Substation = "첫번째"
	b := outageRecord("원주", "2025-08-25 09:00", "")
	b.Substation = "두번째"
	c := outageRecord("원주", "미정", "")
	c.Substation = "세번째"
	d := outageRecord("원주", "미정", "")
	d.Substation = "네번째"

	result, err := Transform([]domain.OutageRecord{a, b, c, d})
	require.NoError(t, err)
	require.Len(t, result, 4)
	assert.Equal(t, "첫번째", result[0].Substation)
	assert.Equal(t, "두번째", result[1].Substation)
	assert.Equal(t, "세번째", result[2].Substation)
	assert.Equal(t, "네번째", result[3].Substation)
}

func TestTransform_SequenceNumbersAreContiguous(t *testing.T) {
	var records []domain.OutageRecord
	sites := config.AllowedSecondarySites
	for i := 0; i < 12; i++ {
		procedure := ""
		if i%3 == 0 {
			procedure = config.LiveWorkProcedure
		}
		records = append(records, outageRecord(sites[i%len(sites)], "2025-08-25 09:00", procedure))
	}
	// throw in some records that get filtered
	records = append(records, outageRecord("제주", "2025-08-25 09:00", ""))

	result, err := Transform(records)
	require.NoError(t, err)
	require.Len(t, result, 12)

	sawLive := false
	for i, rec := range result {
		assert.Equal(t, i+1, rec.Seq)
		assert.Contains(t, config.AllowedSecondarySites, rec.SecondarySite)
		assert.Empty(t, rec.SafetyManager)
		if rec.Classification == domain.ClassificationLiveWork {
			sawLive = true
		} else {
			assert.False(t, sawLive, "outage record after live-work group at index %d", i)
		}
	}
}

func TestTransform_CopiesFields(t *testing.T) {
	rec := outageRecord("직할", "2025-08-25 09:00", "")
	rec.Category = "연속"

	result, err := Transform([]domain.OutageRecord{rec})
	require.NoError(t, err)
	require.Len(t, result, 1)

	out := result[0]
	assert.Equal(t, rec.Start, out.Start)
	assert.Equal(t, rec.End, out.End)
	assert.Equal(t, rec.Substation, out.Substation)
	assert.Equal(t, rec.Voltage, out.Voltage)
	assert.Equal(t, rec.Equipment, out.Equipment)
	assert.Equal(t, rec.WorkSummary, out.WorkSummary)
	assert.Equal(t, "연속", out.Category2)
	assert.Equal(t, rec.Department, out.Department)
	assert.Equal(t, rec.Supervisor, out.Supervisor)
}

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2025-08-25 09:30:00", true},
		{"2025-08-25 09:30", true},
		{"2025-08-25", true},
		{" 2025-08-25 09:30 ", true},
		{"미정", false},
		{"", false},
		{"08/25/2025", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			_, ok := parseStartTime(tt.value)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFilterByDate(t *testing.T) {
	spanning := outageRecord("직할", "2025-08-24 22:00", "")
	spanning.End = "2025-08-26 06:00"
	outside := outageRecord("강릉", "2025-08-27 09:00", "")
	outside.Start = "2025-08-27 09:00"
	outside.End = "2025-08-28 18:00"
	unparseable := outageRecord("동해", "미정", "")
	unparseable.End = "미정"

	target := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)

	t.Run("keeps records covering the target date", func(t *testing.T) {
		filtered := FilterByDate([]domain.OutageRecord{spanning, outside, unparseable}, target)
		require.Len(t, filtered, 1)
		assert.Equal(t, "직할", filtered[0].SecondarySite)
	})

	t.Run("falls back to full input when nothing matches", func(t *testing.T) {
		input := []domain.OutageRecord{outside, unparseable}
		filtered := FilterByDate(input, target)
		assert.Equal(t, input, filtered)
	})
}
