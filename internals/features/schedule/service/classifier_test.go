package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorx_backend/internals/features/schedule/model"
)

func classEvent(dateKey string, completed bool) model.ScheduleEvent {
	return model.ScheduleEvent{
		ID:        model.EventID("t1", model.EventClass, dateKey),
		Type:      model.EventClass,
		TuitionID: "t1",
		Name:      "Karima Akter",
		Subject:   "Physics",
		Completed: completed,
		Time:      "All Day",
	}
}

func TestClassify_TodayNeverMissed(t *testing.T) {
	today := time.Date(2025, 8, 15, 23, 50, 0, 0, time.UTC)

	// tipe tersimpan sudah "missed-class" dari draft lama — harus dikoreksi
	stale := classEvent("2025-08-15", false)
	stale.Type = model.EventMissedClass

	got := Classify(model.MonthEventMap{"2025-08-15": {stale}}, today, 0, 0)

	require.Len(t, got.Upcoming, 1)
	assert.Equal(t, model.EventClass, got.Upcoming[0].Type)
	assert.Empty(t, got.Missed)
	assert.Zero(t, got.MissedTotal)
}

func TestClassify_PastBuckets(t *testing.T) {
	today := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

	events := model.MonthEventMap{
		"2025-08-04": {classEvent("2025-08-04", true)},  // selesai → drop
		"2025-08-11": {classEvent("2025-08-11", false)}, // terlewat
	}

	got := Classify(events, today, 0, 0)

	assert.Empty(t, got.Upcoming)
	require.Len(t, got.Missed, 1)
	assert.Equal(t, "2025-08-11", got.Missed[0].Date)
	assert.Equal(t, model.EventMissedClass, got.Missed[0].Type)
	assert.Equal(t, 1, got.MissedTotal)
}

func TestClassify_LookaheadHorizon(t *testing.T) {
	today := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

	events := model.MonthEventMap{
		"2025-08-20": {classEvent("2025-08-20", false)}, // dalam 7 hari
		"2025-08-25": {classEvent("2025-08-25", false)}, // lewat horizon
	}

	got := Classify(events, today, 0, 0)

	require.Len(t, got.Upcoming, 1)
	assert.Equal(t, "2025-08-20", got.Upcoming[0].Date)
	assert.Empty(t, got.Missed)
}

func TestClassify_Ordering(t *testing.T) {
	today := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

	events := model.MonthEventMap{
		"2025-08-18": {classEvent("2025-08-18", false)},
		"2025-08-16": {classEvent("2025-08-16", false)},
		"2025-08-04": {classEvent("2025-08-04", false)},
		"2025-08-11": {classEvent("2025-08-11", false)},
	}

	got := Classify(events, today, 0, 0)

	require.Len(t, got.Upcoming, 2)
	assert.Equal(t, "2025-08-16", got.Upcoming[0].Date, "upcoming terdekat dulu")
	assert.Equal(t, "2025-08-18", got.Upcoming[1].Date)

	require.Len(t, got.Missed, 2)
	assert.Equal(t, "2025-08-11", got.Missed[0].Date, "missed terbaru dulu")
	assert.Equal(t, "2025-08-04", got.Missed[1].Date)
}

func TestClassify_MissedPaging(t *testing.T) {
	today := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

	events := model.MonthEventMap{
		"2025-08-04": {classEvent("2025-08-04", false)},
		"2025-08-06": {classEvent("2025-08-06", false)},
		"2025-08-11": {classEvent("2025-08-11", false)},
	}

	got := Classify(events, today, 0, 2)

	assert.Len(t, got.Missed, 2)
	assert.Equal(t, 3, got.MissedTotal, "total penuh tetap dilaporkan")
}

func TestClassify_SkipsInvalidDateKey(t *testing.T) {
	today := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

	events := model.MonthEventMap{
		"not-a-date": {classEvent("2025-08-16", false)},
		"2025-08-16": {classEvent("2025-08-16", false)},
	}

	got := Classify(events, today, 0, 0)

	assert.Len(t, got.Upcoming, 1)
}

func TestClassify_MissedPaydayCorrection(t *testing.T) {
	today := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

	payday := model.ScheduleEvent{
		ID:        model.EventID("t1", model.EventPayday, "2025-08-06"),
		Type:      model.EventPayday,
		TuitionID: "t1",
		Name:      "Rahim Uddin",
		Amount:    5000,
		Time:      "All Day",
	}

	got := Classify(model.MonthEventMap{"2025-08-06": {payday}}, today, 0, 0)

	require.Len(t, got.Missed, 1)
	assert.Equal(t, model.EventMissedPayday, got.Missed[0].Type)
}
