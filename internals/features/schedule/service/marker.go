// file: internals/features/schedule/service/marker.go
package service

import (
	"sort"

	"tutorx_backend/internals/features/schedule/model"
)

/* =======================================================
   CalendarMarker

   Menurunkan tanda visual per tanggal untuk kalender
   multi-dot: warna per event, diprioritaskan supaya status
   paling urgent selalu render duluan.
   ======================================================= */

// Warna status (hex sama dengan aplikasi mobile).
const (
	ColorRed   = "#FF4444" // missed-*
	ColorGold  = "#FFD700" // payday
	ColorGreen = "#4CAF50" // kelas selesai
	ColorBlue  = "#2196F3" // kelas terjadwal
)

const maxDotsPerDate = 3

// Urutan prioritas tetap; warna di luar daftar selalu paling akhir.
var colorPriority = map[string]int{
	ColorRed:   0,
	ColorGold:  1,
	ColorGreen: 2,
}

type Dot struct {
	Color string `json:"color"`
}

// DateMark = payload marking satu sel tanggal (multi-dot calendar).
type DateMark struct {
	Marked        bool   `json:"marked"`
	Dots          []Dot  `json:"dots"`
	SelectedColor string `json:"selected_color"`
}

// Mark menurunkan tanda kalender dari month map. Tanggal tanpa
// event tidak menghasilkan entry.
func Mark(events model.MonthEventMap) map[string]DateMark {
	marked := make(map[string]DateMark, len(events))

	for dateKey, dayEvents := range events {
		if len(dayEvents) == 0 {
			continue
		}

		colors := make([]string, 0, len(dayEvents))
		for _, ev := range dayEvents {
			colors = append(colors, EventColor(ev))
		}
		prioritizeColors(colors)

		dots := make([]Dot, 0, maxDotsPerDate)
		for _, col := range colors {
			if len(dots) == maxDotsPerDate {
				break
			}
			dots = append(dots, Dot{Color: col})
		}

		marked[dateKey] = DateMark{
			Marked:        true,
			Dots:          dots,
			SelectedColor: colors[0],
		}
	}

	return marked
}

// EventColor memetakan satu event ke warna statusnya.
func EventColor(ev model.ScheduleEvent) string {
	if ev.Completed {
		return ColorGreen
	}
	switch ev.Type {
	case model.EventMissedClass, model.EventMissedPayday:
		return ColorRed
	case model.EventPayday:
		return ColorGold
	default:
		return ColorBlue
	}
}

func prioritizeColors(colors []string) {
	sort.SliceStable(colors, func(i, j int) bool {
		return colorRank(colors[i]) < colorRank(colors[j])
	})
}

func colorRank(c string) int {
	if r, ok := colorPriority[c]; ok {
		return r
	}
	return len(colorPriority) // di luar daftar → belakang
}
