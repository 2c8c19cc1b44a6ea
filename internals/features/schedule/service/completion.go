// file: internals/features/schedule/service/completion.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"tutorx_backend/internals/features/schedule/model"
	helper "tutorx_backend/internals/helpers"
)

/* =======================================================
   Completion updater

   Menandai satu event kelas selesai + menyimpan durasi
   timer. Tulisnya lewat merge satu key tanggal saja; event
   lain di tanggal yang sama ikut terkirim utuh supaya
   replace key tidak menghilangkan mereka.
   ======================================================= */

// MarkClassCompleted menandai kelas tuitionID pada dateKey selesai,
// dengan durasi timer dalam detik. Kalau event kelasnya belum ada di
// dokumen (belum pernah reconcile di device manapun), event completed
// disintesis dari data tuition supaya penyelesaian tidak hilang.
func (s *ScheduleService) MarkClassCompleted(ctx context.Context, userID uuid.UUID, dateKey string, tuitionID uuid.UUID, seconds int) error {
	day, ok := helper.ParseDateKey(dateKey)
	if !ok {
		return fmt.Errorf("key tanggal tidak valid: %q", dateKey)
	}
	monthKey := helper.MonthKey(day)

	persisted, err := s.store.GetDocument(ctx, userID, monthKey)
	if err != nil {
		return err
	}

	formatted := FormatClassTime(seconds)
	tuitionStr := tuitionID.String()
	dayEvents := append([]model.ScheduleEvent(nil), persisted[dateKey]...)

	updated := false
	for i := range dayEvents {
		ev := &dayEvents[i]
		if ev.TuitionID != tuitionStr || ev.Type.Base() != model.EventClass || ev.Completed {
			continue
		}
		ev.Completed = true
		ev.ClassTime = &seconds
		ev.ClassTimeFormatted = &formatted
		updated = true
		break
	}

	if !updated {
		dayEvents = append(dayEvents, s.synthesizeCompletedClass(ctx, userID, tuitionID, dateKey, seconds, formatted))
	}

	return s.store.MergeDocument(ctx, userID, monthKey, model.MonthEventMap{
		dateKey: dayEvents,
	})
}

func (s *ScheduleService) synthesizeCompletedClass(ctx context.Context, userID, tuitionID uuid.UUID, dateKey string, seconds int, formatted string) model.ScheduleEvent {
	name := "unknown"
	subject := "General"

	if t, err := s.src.GetByID(ctx, tuitionID); err == nil {
		role, roleErr := s.src.UserRole(ctx, userID)
		if roleErr != nil {
			log.Printf("[WARN] schedule: role viewer tidak terbaca, pakai nama student: %v", roleErr)
		}
		if n := t.CounterpartyName(role); n != "" {
			name = n
		}
		subject = t.PrimarySubject()
	} else {
		log.Printf("[WARN] schedule: tuition %s tidak ditemukan, sintesis event dengan placeholder: %v", tuitionID, err)
	}

	return model.ScheduleEvent{
		ID:                 model.EventID(tuitionID.String(), model.EventClass, dateKey),
		Type:               model.EventClass,
		TuitionID:          tuitionID.String(),
		Name:               name,
		Subject:            subject,
		Completed:          true,
		Time:               "All Day",
		ClassTime:          &seconds,
		ClassTimeFormatted: &formatted,
	}
}

// FormatClassTime memformat durasi detik ke "HH:MM:SS".
func FormatClassTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
