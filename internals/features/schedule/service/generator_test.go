package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorx_backend/internals/features/schedule/model"
	tuitionModel "tutorx_backend/internals/features/tuitions/model"
)

// Agustus 2025: tanggal 1 jatuh di Jumat.
// Senin: 4, 11, 18, 25 — Rabu: 6, 13, 20, 27.
var augustRef = time.Date(2025, 8, 15, 10, 30, 0, 0, time.UTC)

func newTuition(days []int64, perPayday, sincePayday int) tuitionModel.TuitionModel {
	return tuitionModel.TuitionModel{
		TuitionID:                 uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		TuitionTeacherID:          uuid.New(),
		TuitionStudentID:          uuid.New(),
		TuitionTeacherName:        "Rahim Uddin",
		TuitionStudentName:        "Karima Akter",
		TuitionSubjects:           []string{"Physics", "Math"},
		TuitionScheduleDays:       days,
		TuitionClassesPerPayday:   perPayday,
		TuitionClassesSincePayday: sincePayday,
		TuitionSalary:             5000,
	}
}

func TestGenerate_WeeklyClassProjection(t *testing.T) {
	tuitions := []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}

	got := Generate(augustRef, tuitions, "Teacher")

	require.Len(t, got, 4)
	for _, dateKey := range []string{"2025-08-04", "2025-08-11", "2025-08-18", "2025-08-25"} {
		events := got[dateKey]
		require.Len(t, events, 1, "satu event kelas di %s", dateKey)

		ev := events[0]
		assert.Equal(t, model.EventClass, ev.Type)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111-class-"+dateKey, ev.ID)
		assert.Equal(t, "Karima Akter", ev.Name, "teacher melihat nama student")
		assert.Equal(t, "Physics", ev.Subject, "subject pertama jadi label")
		assert.Equal(t, "All Day", ev.Time)
		assert.False(t, ev.Completed)
	}
}

func TestGenerate_PaydayCountdown(t *testing.T) {
	// per=3 since=1 → sisa 2 kelas; urutan kelas Agustus:
	// Senin 4 (ke-1), Rabu 6 (ke-2) → payday jatuh di 2025-08-06.
	tuitions := []tuitionModel.TuitionModel{newTuition([]int64{1, 3}, 3, 1)}

	got := Generate(augustRef, tuitions, "Student")

	events := got["2025-08-06"]
	require.Len(t, events, 2, "kelas + payday di hari yang sama")

	var payday *model.ScheduleEvent
	for i := range events {
		if events[i].Type == model.EventPayday {
			payday = &events[i]
		}
	}
	require.NotNil(t, payday)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111-payday-2025-08-06", payday.ID)
	assert.Equal(t, 5000.0, payday.Amount)
	assert.Equal(t, "Rahim Uddin", payday.Name, "student melihat nama teacher")

	// hanya satu payday sebulan
	paydayCount := 0
	for _, dayEvents := range got {
		for _, ev := range dayEvents {
			if ev.Type == model.EventPayday {
				paydayCount++
			}
		}
	}
	assert.Equal(t, 1, paydayCount)
}

func TestGenerate_NoPaydayWhenCadenceZero(t *testing.T) {
	tuitions := []tuitionModel.TuitionModel{newTuition([]int64{1}, 0, 0)}

	got := Generate(augustRef, tuitions, "Teacher")

	for dateKey, dayEvents := range got {
		for _, ev := range dayEvents {
			assert.Equal(t, model.EventClass, ev.Type, "hanya kelas di %s", dateKey)
		}
	}
}

func TestGenerate_SkipsInvalidWeekday(t *testing.T) {
	tuitions := []tuitionModel.TuitionModel{newTuition([]int64{9}, 0, 0)}

	got := Generate(augustRef, tuitions, "Teacher")

	assert.Empty(t, got)
}

func TestGenerate_Deterministic(t *testing.T) {
	tuitions := []tuitionModel.TuitionModel{newTuition([]int64{0, 1, 3}, 8, 5)}

	first := Generate(augustRef, tuitions, "Teacher")
	second := Generate(augustRef, tuitions, "Teacher")

	assert.Equal(t, first, second)
}

func TestGenerate_EmptyAgreements(t *testing.T) {
	assert.Empty(t, Generate(augustRef, nil, "Teacher"))
}
