// file: internals/features/schedule/service/generator.go
package service

import (
	"log"
	"time"

	"tutorx_backend/internals/features/schedule/model"
	tuitionModel "tutorx_backend/internals/features/tuitions/model"
	helper "tutorx_backend/internals/helpers"
)

/* =======================================================
   RecurrenceGenerator

   Fungsi murni: proyeksi event satu bulan penuh dari daftar
   kesepakatan tuition + tanggal referensi. Tidak ada side
   effect dan deterministik — input sama, output byte-identik.
   Tipe yang dipancarkan hanya class/payday; label "missed"
   baru diputuskan Classifier saat view.
   ======================================================= */

// Generate menghasilkan MonthEventMap untuk bulan yang memuat reference.
func Generate(reference time.Time, tuitions []tuitionModel.TuitionModel, viewerRole string) model.MonthEventMap {
	monthStart := helper.StartOfMonth(reference)
	monthEnd := helper.EndOfMonth(reference)
	generated := model.MonthEventMap{}

	for i := range tuitions {
		t := &tuitions[i]
		displayName := t.CounterpartyName(viewerRole)
		if displayName == "" {
			displayName = "unknown"
		}
		tuitionID := t.TuitionID.String()

		// ---- Event kelas: walk mingguan per weekday terjadwal ----
		for _, dayIdx := range t.TuitionScheduleDays {
			if dayIdx < 0 || dayIdx > 6 {
				log.Printf("[WARN] generator: weekday %d di luar 0..6, skip (tuition=%s)", dayIdx, tuitionID)
				continue
			}

			// cari kemunculan pertama weekday tsb di bulan ini
			day := monthStart
			for int64(day.Weekday()) != dayIdx && !day.After(monthEnd) {
				day = day.AddDate(0, 0, 1)
			}

			for !day.After(monthEnd) {
				dateKey := helper.FormatDateKey(day)
				generated[dateKey] = append(generated[dateKey], model.ScheduleEvent{
					ID:        model.EventID(tuitionID, model.EventClass, dateKey),
					Type:      model.EventClass,
					TuitionID: tuitionID,
					Name:      displayName,
					Subject:   t.PrimarySubject(),
					Completed: false,
					Time:      "All Day",
				})
				day = day.AddDate(0, 0, 7) // minggu berikutnya
			}
		}

		// ---- Event payday: hitung mundur sisa kelas ----
		if t.TuitionClassesPerPayday > 0 {
			remaining := t.TuitionClassesPerPayday - t.TuitionClassesSincePayday
			classCount := 0

			for day := monthStart; !day.After(monthEnd) && classCount < remaining; day = day.AddDate(0, 0, 1) {
				if !containsDay(t.TuitionScheduleDays, int64(day.Weekday())) {
					continue
				}
				classCount++
				if classCount == remaining {
					dateKey := helper.FormatDateKey(day)
					generated[dateKey] = append(generated[dateKey], model.ScheduleEvent{
						ID:        model.EventID(tuitionID, model.EventPayday, dateKey),
						Type:      model.EventPayday,
						TuitionID: tuitionID,
						Name:      displayName,
						Amount:    t.TuitionSalary,
						Completed: false,
						Time:      "All Day",
					})
				}
			}
		}
	}

	return generated
}

func containsDay(days []int64, d int64) bool {
	for _, v := range days {
		if v == d {
			return true
		}
	}
	return false
}
