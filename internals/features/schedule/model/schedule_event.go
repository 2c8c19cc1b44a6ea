// file: internals/features/schedule/model/schedule_event.go
package model

import (
	"fmt"
	"strings"
)

/* =======================================================
   Tipe event jadwal

   "missed-*" adalah klasifikasi saat view, bukan fakta yang
   disimpan — generator hanya memancarkan class/payday.
   ======================================================= */

type EventType string

const (
	EventClass        EventType = "class"
	EventMissedClass  EventType = "missed-class"
	EventPayday       EventType = "payday"
	EventMissedPayday EventType = "missed-payday"
)

// ScheduleEvent = satu kejadian bertanggal di dokumen jadwal.
// Key JSON sengaja camelCase: bentuknya harus sama persis dengan
// dokumen yang sudah dibaca aplikasi mobile.
type ScheduleEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	TuitionID string    `json:"tuitionId"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject,omitempty"` // event kelas
	Amount    float64   `json:"amount,omitempty"`  // event payday
	Completed bool      `json:"completed"`
	Time      string    `json:"time"` // selalu "All Day" di domain ini

	// Terisi setelah kelas selesai (timer detik + format tampilan)
	ClassTime          *int    `json:"classTime,omitempty"`
	ClassTimeFormatted *string `json:"classTimeFormatted,omitempty"`
}

// MonthEventMap memetakan key tanggal yyyy-mm-dd ke daftar event
// hari itu. Urutan key tidak bermakna; urutan ulang selalu lewat
// parsing tanggal, bukan sort key.
type MonthEventMap map[string][]ScheduleEvent

// EventID membentuk id deterministik {tuitionId}-{kind}-{yyyy-mm-dd}.
// Regenerasi dengan input sama menghasilkan id sama → merge aman.
func EventID(tuitionID string, kind EventType, dateKey string) string {
	return fmt.Sprintf("%s-%s-%s", tuitionID, kind, dateKey)
}

// IsMissed: apakah tipe tergolong "missed".
func (t EventType) IsMissed() bool {
	return strings.Contains(string(t), "missed")
}

// IsClassKind: class / missed-class.
func (t EventType) IsClassKind() bool {
	return strings.Contains(string(t), "class")
}

// Base mengembalikan tipe dasar tanpa prefix missed.
func (t EventType) Base() EventType {
	if t.IsClassKind() {
		return EventClass
	}
	return EventPayday
}

// Missed mengembalikan varian missed dari tipe dasar.
func (t EventType) Missed() EventType {
	if t.IsClassKind() {
		return EventMissedClass
	}
	return EventMissedPayday
}
