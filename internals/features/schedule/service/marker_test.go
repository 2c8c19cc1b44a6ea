package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorx_backend/internals/features/schedule/model"
)

func TestEventColor(t *testing.T) {
	tests := []struct {
		name  string
		event model.ScheduleEvent
		want  string
	}{
		{"kelas terjadwal", model.ScheduleEvent{Type: model.EventClass}, ColorBlue},
		{"kelas selesai", model.ScheduleEvent{Type: model.EventClass, Completed: true}, ColorGreen},
		{"kelas terlewat", model.ScheduleEvent{Type: model.EventMissedClass}, ColorRed},
		{"payday", model.ScheduleEvent{Type: model.EventPayday}, ColorGold},
		{"payday terlewat", model.ScheduleEvent{Type: model.EventMissedPayday}, ColorRed},
		{"completed menang atas missed", model.ScheduleEvent{Type: model.EventMissedClass, Completed: true}, ColorGreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EventColor(tt.event))
		})
	}
}

func TestMark_PriorityOrder(t *testing.T) {
	events := model.MonthEventMap{
		"2025-08-06": {
			{Type: model.EventClass},       // biru
			{Type: model.EventPayday},      // emas
			{Type: model.EventMissedClass}, // merah
		},
	}

	got := Mark(events)

	mark, ok := got["2025-08-06"]
	require.True(t, ok)
	assert.True(t, mark.Marked)
	assert.Equal(t, ColorRed, mark.SelectedColor, "merah selalu paling urgent")
	require.Len(t, mark.Dots, 3)
	assert.Equal(t, ColorRed, mark.Dots[0].Color)
	assert.Equal(t, ColorGold, mark.Dots[1].Color)
	assert.Equal(t, ColorBlue, mark.Dots[2].Color, "warna di luar prioritas paling belakang")
}

func TestMark_CapsDotsAtThree(t *testing.T) {
	events := model.MonthEventMap{
		"2025-08-06": {
			{Type: model.EventClass},
			{Type: model.EventClass, Completed: true},
			{Type: model.EventPayday},
			{Type: model.EventMissedClass},
		},
	}

	got := Mark(events)

	require.Len(t, got["2025-08-06"].Dots, 3)
	assert.Equal(t, ColorRed, got["2025-08-06"].SelectedColor)
}

func TestMark_EmptyDateUnmarked(t *testing.T) {
	got := Mark(model.MonthEventMap{"2025-08-06": {}})

	_, ok := got["2025-08-06"]
	assert.False(t, ok)
}
