// file: internals/features/schedule/dto/schedule_dto.go
package dto

import (
	"strings"

	"tutorx_backend/internals/features/schedule/model"
	"tutorx_backend/internals/features/schedule/service"
)

/* ===================== REQUEST ===================== */

// CompleteClassRequest = payload penyelesaian kelas.
// ClassTime dalam detik (durasi timer di device).
type CompleteClassRequest struct {
	Date      string `json:"date" validate:"required,len=10"`
	TuitionID string `json:"tuition_id" validate:"required,uuid"`
	ClassTime int    `json:"class_time" validate:"min=0"`
}

func (r *CompleteClassRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.TuitionID = strings.TrimSpace(strings.ToLower(r.TuitionID))
}

/* ===================== RESPONSE ===================== */

// ScheduleMonthResponse = satu bulan penuh siap render:
// dokumen mentah per tanggal + hasil klasifikasi + marking kalender.
type ScheduleMonthResponse struct {
	MonthKey    string                      `json:"month_key"`
	Events      model.MonthEventMap         `json:"events"`
	Upcoming    []service.ClassifiedEvent   `json:"upcoming"`
	Missed      []service.ClassifiedEvent   `json:"missed"`
	MissedTotal int                         `json:"missed_total"`
	Marked      map[string]service.DateMark `json:"marked_dates"`
	Degraded    bool                        `json:"degraded"`
}

// MissedListResponse = halaman list missed (load-more).
type MissedListResponse struct {
	MonthKey string                    `json:"month_key"`
	Missed   []service.ClassifiedEvent `json:"missed"`
	Total    int                       `json:"missed_total"`
}
