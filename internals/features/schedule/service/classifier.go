// file: internals/features/schedule/service/classifier.go
package service

import (
	"log"
	"sort"
	"time"

	"tutorx_backend/internals/features/schedule/model"
	helper "tutorx_backend/internals/helpers"
)

/* =======================================================
   Classifier

   Memilah MonthEventMap hasil merge menjadi bucket
   "upcoming" dan "missed". Aturan waktu (hari ini tidak
   pernah missed, completed masa lalu di-drop) dievaluasi
   saat view — tipe "missed" yang tersimpan dari draft lama
   dikoreksi di sini, bukan dipercaya mentah-mentah.
   ======================================================= */

// Default tampilan: 7 hari ke depan, 20 missed per halaman.
const (
	DefaultLookaheadDays  = 7
	DefaultMissedPageSize = 20
)

// ClassifiedEvent = event + tanggalnya (untuk list di luar kalender).
type ClassifiedEvent struct {
	model.ScheduleEvent
	Date string `json:"date"`
}

type Classification struct {
	Upcoming    []ClassifiedEvent `json:"upcoming"`
	Missed      []ClassifiedEvent `json:"missed"`
	MissedTotal int               `json:"missed_total"`
}

// Classify memilah events terhadap "today" (granularity tanggal).
// missedLimit memotong list missed; total penuh tetap dilaporkan
// supaya klien tahu masih ada halaman berikutnya.
func Classify(events model.MonthEventMap, today time.Time, lookaheadDays, missedLimit int) Classification {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	if missedLimit <= 0 {
		missedLimit = DefaultMissedPageSize
	}

	todayDate := helper.DateOnly(today)
	horizon := todayDate.AddDate(0, 0, lookaheadDays)

	upcoming := make([]ClassifiedEvent, 0)
	missed := make([]ClassifiedEvent, 0)

	for dateKey, dayEvents := range events {
		d, ok := helper.ParseDateKey(dateKey)
		if !ok {
			log.Printf("[WARN] classifier: key tanggal tidak valid, skip: %q", dateKey)
			continue
		}

		for _, ev := range dayEvents {
			item := ClassifiedEvent{ScheduleEvent: ev, Date: dateKey}

			switch {
			case d.Equal(todayDate):
				// hari ini tidak pernah missed, apapun tipe tersimpannya
				item.Type = ev.Type.Base()
				upcoming = append(upcoming, item)

			case d.Before(todayDate):
				if ev.Completed {
					continue // selesai, bukan missed — keluar dari kedua bucket
				}
				item.Type = ev.Type.Missed()
				missed = append(missed, item)

			case !d.After(horizon):
				// tipe "missed" bertanggal depan = artefak generator, koreksi
				item.Type = ev.Type.Base()
				upcoming = append(upcoming, item)
			}
			// melewati horizon: tidak masuk list (tetap tampil di kalender)
		}
	}

	// upcoming: paling dekat dulu; missed: paling baru terlewat dulu.
	// Tie-break pakai id supaya hasil deterministik antar-pemanggilan.
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].ID < upcoming[j].ID
	})
	sort.SliceStable(missed, func(i, j int) bool {
		if missed[i].Date != missed[j].Date {
			return missed[i].Date > missed[j].Date
		}
		return missed[i].ID < missed[j].ID
	})

	total := len(missed)
	if len(missed) > missedLimit {
		missed = missed[:missedLimit]
	}

	return Classification{
		Upcoming:    upcoming,
		Missed:      missed,
		MissedTotal: total,
	}
}
