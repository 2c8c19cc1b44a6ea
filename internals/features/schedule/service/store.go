// file: internals/features/schedule/service/store.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorx_backend/internals/features/schedule/model"
	tuitionModel "tutorx_backend/internals/features/tuitions/model"
	userModel "tutorx_backend/internals/features/users/user/model"
)

// Sentinel untuk rantai fallback (remote → cache → empty).
var (
	// ErrScheduleUnavailable: provider ini tidak bisa memberi data.
	ErrScheduleUnavailable = errors.New("schedule source unavailable")
	// ErrScheduleDegraded: seluruh rantai gagal, hasil bulan kosong.
	// Recoverable — pull-to-refresh menjalankan ulang reconcile penuh.
	ErrScheduleDegraded = errors.New("schedule degraded: serving empty month")
)

/* =======================================================
   Gateway dokumen jadwal

   Kontrak get/merge untuk dokumen bulanan + get/set shadow
   cache. Semantik merge: hanya key tanggal yang dikirim yang
   tersentuh, key lain di dokumen tidak pernah terhapus.
   ======================================================= */

type ScheduleStore interface {
	GetDocument(ctx context.Context, userID uuid.UUID, monthKey string) (model.MonthEventMap, error)
	MergeDocument(ctx context.Context, userID uuid.UUID, monthKey string, events model.MonthEventMap) error
	GetCache(ctx context.Context, userID uuid.UUID, monthKey string) (model.MonthEventMap, error)
	SetCache(ctx context.Context, userID uuid.UUID, monthKey string, events model.MonthEventMap) error
}

// TuitionSource menyuplai kesepakatan + role viewer (kolaborator
// eksternal dari sudut pandang subsistem jadwal; read-only).
type TuitionSource interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]tuitionModel.TuitionModel, error)
	UserRole(ctx context.Context, userID uuid.UUID) (string, error)
	GetByID(ctx context.Context, tuitionID uuid.UUID) (*tuitionModel.TuitionModel, error)
}

/* =======================================================
   Implementasi GORM / PostgreSQL
   ======================================================= */

type GormScheduleStore struct {
	DB *gorm.DB
}

func NewGormScheduleStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{DB: db}
}

func (s *GormScheduleStore) GetDocument(ctx context.Context, userID uuid.UUID, monthKey string) (model.MonthEventMap, error) {
	var row model.ScheduleDocumentModel
	err := s.DB.WithContext(ctx).
		Where("schedule_document_user_id = ? AND schedule_document_month_key = ?", userID, monthKey).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// bulan belum pernah dipersist = state kosong valid, bukan error
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get document: %v", ErrScheduleUnavailable, err)
	}

	events := model.MonthEventMap{}
	if len(row.ScheduleDocumentEvents) > 0 {
		if err := json.Unmarshal(row.ScheduleDocumentEvents, &events); err != nil {
			return nil, fmt.Errorf("%w: decode document: %v", ErrScheduleUnavailable, err)
		}
	}
	return events, nil
}

// MergeDocument menulis dengan semantik merge per key tanggal:
// jsonb || hanya me-replace key yang dikirim, key historis lain utuh.
func (s *GormScheduleStore) MergeDocument(ctx context.Context, userID uuid.UUID, monthKey string, events model.MonthEventMap) error {
	if len(events) == 0 {
		return nil
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	res := s.DB.WithContext(ctx).Exec(`
		INSERT INTO schedule_documents
			(schedule_document_user_id, schedule_document_month_key, schedule_document_events,
			 schedule_document_created_at, schedule_document_updated_at)
		VALUES (?, ?, ?::jsonb, now(), now())
		ON CONFLICT (schedule_document_user_id, schedule_document_month_key)
		DO UPDATE SET
			schedule_document_events     = schedule_documents.schedule_document_events || EXCLUDED.schedule_document_events,
			schedule_document_updated_at = now()
	`, userID, monthKey, string(payload))
	if res.Error != nil {
		return fmt.Errorf("%w: merge document: %v", ErrScheduleUnavailable, res.Error)
	}
	return nil
}

func (s *GormScheduleStore) GetCache(ctx context.Context, userID uuid.UUID, monthKey string) (model.MonthEventMap, error) {
	var row model.ScheduleCacheModel
	err := s.DB.WithContext(ctx).
		Where("schedule_cache_user_id = ? AND schedule_cache_month_key = ?", userID, monthKey).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cache miss", ErrScheduleUnavailable)
		}
		return nil, fmt.Errorf("%w: get cache: %v", ErrScheduleUnavailable, err)
	}

	events := model.MonthEventMap{}
	if len(row.ScheduleCacheEvents) > 0 {
		if err := json.Unmarshal(row.ScheduleCacheEvents, &events); err != nil {
			return nil, fmt.Errorf("%w: decode cache: %v", ErrScheduleUnavailable, err)
		}
	}
	return events, nil
}

// SetCache me-replace utuh shadow copy bulan tsb.
func (s *GormScheduleStore) SetCache(ctx context.Context, userID uuid.UUID, monthKey string, events model.MonthEventMap) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	res := s.DB.WithContext(ctx).Exec(`
		INSERT INTO schedule_caches
			(schedule_cache_user_id, schedule_cache_month_key, schedule_cache_events,
			 schedule_cache_updated_at)
		VALUES (?, ?, ?::jsonb, now())
		ON CONFLICT (schedule_cache_user_id, schedule_cache_month_key)
		DO UPDATE SET
			schedule_cache_events     = EXCLUDED.schedule_cache_events,
			schedule_cache_updated_at = now()
	`, userID, monthKey, string(payload))
	if res.Error != nil {
		return fmt.Errorf("set cache: %w", res.Error)
	}
	return nil
}

/* =======================================================
   TuitionSource via GORM
   ======================================================= */

type GormTuitionSource struct {
	DB *gorm.DB
}

func NewGormTuitionSource(db *gorm.DB) *GormTuitionSource {
	return &GormTuitionSource{DB: db}
}

func (s *GormTuitionSource) ListForUser(ctx context.Context, userID uuid.UUID) ([]tuitionModel.TuitionModel, error) {
	var rows []tuitionModel.TuitionModel
	if err := s.DB.WithContext(ctx).
		Where("tuition_teacher_id = ? OR tuition_student_id = ?", userID, userID).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: list tuitions: %v", ErrScheduleUnavailable, err)
	}
	return rows, nil
}

func (s *GormTuitionSource) UserRole(ctx context.Context, userID uuid.UUID) (string, error) {
	role, err := userModel.GetUserRole(s.DB.WithContext(ctx), userID)
	if err != nil {
		return "", fmt.Errorf("%w: user role: %v", ErrScheduleUnavailable, err)
	}
	return role, nil
}

func (s *GormTuitionSource) GetByID(ctx context.Context, tuitionID uuid.UUID) (*tuitionModel.TuitionModel, error) {
	var row tuitionModel.TuitionModel
	if err := s.DB.WithContext(ctx).
		Where("tuition_id = ?", tuitionID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
