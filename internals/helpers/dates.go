package helper

import (
	"fmt"
	"time"
)

// Format kanonik untuk kunci dokumen jadwal.
const (
	DateKeyLayout  = "2006-01-02"   // yyyy-mm-dd (strict)
	MonthKeyLayout = "January 2006" // "August 2025"
)

// ParseDateKey parse key tanggal strict yyyy-mm-dd.
// Key dengan bentuk lain dianggap tidak valid (skip, bukan panic).
func ParseDateKey(key string) (time.Time, bool) {
	if len(key) != len(DateKeyLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDateKey membentuk key yyyy-mm-dd dari sebuah tanggal.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// MonthKey membentuk key dokumen bulanan, contoh: "August 2025".
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// ParseMonthQuery menerima query "?month=2025-08"; kosong → bulan referensi.
func ParseMonthQuery(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("format bulan tidak valid (pakai yyyy-mm): %w", err)
	}
	return t, nil
}

// DateOnly memotong jam/menit/detik — semua perbandingan jadwal
// dilakukan pada granularity tanggal, bukan timestamp.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth / EndOfMonth membatasi rentang generator.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}
