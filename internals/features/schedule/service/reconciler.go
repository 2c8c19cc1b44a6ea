// file: internals/features/schedule/service/reconciler.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorx_backend/internals/features/schedule/model"
	tuitionModel "tutorx_backend/internals/features/tuitions/model"
	helper "tutorx_backend/internals/helpers"
)

/* =======================================================
   ScheduleService

   Orkestrasi reconcile bulanan: ambil dokumen persisted,
   regenerasi event bulan berjalan, merge by-id, lalu tulis
   balik + refresh cache. Sumber data dirangkai eksplisit
   (remote → cache → empty) tanpa state global tersembunyi.
   ======================================================= */

type ScheduleService struct {
	store ScheduleStore
	src   TuitionSource

	// now bisa di-override di test; default time.Now.
	now func() time.Time
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{
		store: NewGormScheduleStore(db),
		src:   NewGormTuitionSource(db),
		now:   time.Now,
	}
}

// NewScheduleServiceWith merangkai service dari kolaborator eksplisit.
func NewScheduleServiceWith(store ScheduleStore, src TuitionSource, now func() time.Time) *ScheduleService {
	if now == nil {
		now = time.Now
	}
	return &ScheduleService{store: store, src: src, now: now}
}

// Reconcile sinkronisasi bulan yang memuat reference, lalu mengembalikan
// month map hasil merge. tuitions boleh nil (di-fetch sendiri); kalau
// pemanggil sudah pegang daftarnya, kirim supaya tidak query dua kali.
//
// Rantai fallback: reconcile penuh → shadow cache → bulan kosong.
// Jalur terakhir mengembalikan ErrScheduleDegraded bersama map kosong
// supaya pemanggil bisa menandai respons sebagai degraded.
func (s *ScheduleService) Reconcile(ctx context.Context, userID uuid.UUID, reference time.Time, tuitions []tuitionModel.TuitionModel, viewerRole string) (model.MonthEventMap, error) {
	monthKey := helper.MonthKey(reference)

	merged, err := s.reconcileRemote(ctx, userID, reference, monthKey, tuitions, viewerRole)
	if err == nil {
		return merged, nil
	}
	log.Printf("[WARN] schedule: reconcile %s gagal, coba cache: %v", monthKey, err)

	cached, cacheErr := s.store.GetCache(ctx, userID, monthKey)
	if cacheErr == nil {
		return cached, nil
	}
	log.Printf("[WARN] schedule: cache %s juga gagal: %v", monthKey, cacheErr)

	return model.MonthEventMap{}, ErrScheduleDegraded
}

// MonthSnapshot membaca dokumen persisted tanpa reconcile (navigasi
// bulan lain / load-more missed). Rantai fallback sama, tanpa tulis.
func (s *ScheduleService) MonthSnapshot(ctx context.Context, userID uuid.UUID, reference time.Time) (model.MonthEventMap, error) {
	monthKey := helper.MonthKey(reference)

	persisted, err := s.store.GetDocument(ctx, userID, monthKey)
	if err == nil {
		if persisted == nil {
			persisted = model.MonthEventMap{}
		}
		return persisted, nil
	}
	log.Printf("[WARN] schedule: snapshot %s gagal, coba cache: %v", monthKey, err)

	cached, cacheErr := s.store.GetCache(ctx, userID, monthKey)
	if cacheErr == nil {
		return cached, nil
	}

	return model.MonthEventMap{}, ErrScheduleDegraded
}

func (s *ScheduleService) reconcileRemote(ctx context.Context, userID uuid.UUID, reference time.Time, monthKey string, tuitions []tuitionModel.TuitionModel, viewerRole string) (model.MonthEventMap, error) {
	if tuitions == nil {
		var err error
		tuitions, err = s.src.ListForUser(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	if viewerRole == "" {
		role, err := s.src.UserRole(ctx, userID)
		if err != nil {
			return nil, err
		}
		viewerRole = role
	}

	persisted, err := s.store.GetDocument(ctx, userID, monthKey)
	if err != nil {
		return nil, err
	}
	if persisted == nil {
		persisted = model.MonthEventMap{}
	}

	generated := Generate(reference, tuitions, viewerRole)
	todayDate := helper.DateOnly(s.now())

	// Merge overlay: key tanggal hari-ini-ke-depan direkonsiliasi
	// by-id; key masa lalu dibiarkan persis seperti tersimpan
	// (riwayat completed/missed tidak ditulis ulang generator).
	overlay := model.MonthEventMap{}
	merged := model.MonthEventMap{}
	for dateKey, dayEvents := range persisted {
		merged[dateKey] = dayEvents
	}

	for dateKey, dayEvents := range generated {
		d, ok := helper.ParseDateKey(dateKey)
		if !ok || d.Before(todayDate) {
			continue
		}
		combined := mergeByID(persisted[dateKey], dayEvents)
		overlay[dateKey] = combined
		merged[dateKey] = combined
	}

	if err := s.store.MergeDocument(ctx, userID, monthKey, overlay); err != nil {
		return nil, err
	}
	if err := s.store.SetCache(ctx, userID, monthKey, merged); err != nil {
		// cache hanya shadow copy; gagal refresh bukan alasan
		// menggagalkan reconcile yang sudah commit
		log.Printf("[WARN] schedule: refresh cache %s gagal: %v", monthKey, err)
	}

	return merged, nil
}

// mergeByID menggabungkan event tersimpan dengan event hasil generate
// secara asosiatif per id. Event completed yang tersimpan selalu menang
// atas regenerasi (completion tidak pernah mundur); event tersimpan yang
// id-nya tidak muncul lagi di hasil generate tetap dipertahankan.
func mergeByID(existing, incoming []model.ScheduleEvent) []model.ScheduleEvent {
	if len(existing) == 0 {
		return incoming
	}

	out := make([]model.ScheduleEvent, len(existing))
	copy(out, existing)
	index := make(map[string]int, len(out))
	for i, ev := range out {
		index[ev.ID] = i
	}

	for _, ev := range incoming {
		i, seen := index[ev.ID]
		if !seen {
			index[ev.ID] = len(out)
			out = append(out, ev)
			continue
		}
		if out[i].Completed {
			continue
		}
		out[i] = ev
	}

	return out
}
