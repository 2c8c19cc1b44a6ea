// file: internals/features/schedule/model/schedule_document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   ScheduleDocumentModel — map ke tabel schedule_documents

   Satu baris = dokumen jadwal satu user untuk satu bulan
   (month key "August 2025"). Events disimpan sebagai JSONB
   MonthEventMap; mutasi SELALU lewat merge per key tanggal
   (jsonb ||), tidak pernah replace seluruh dokumen.
   ======================================================= */

type ScheduleDocumentModel struct {
	ScheduleDocumentID uuid.UUID `json:"schedule_document_id" gorm:"type:uuid;primaryKey;column:schedule_document_id;default:gen_random_uuid()"`

	ScheduleDocumentUserID   uuid.UUID `json:"schedule_document_user_id" gorm:"type:uuid;not null;column:schedule_document_user_id;uniqueIndex:uq_schedule_doc_user_month"`
	ScheduleDocumentMonthKey string    `json:"schedule_document_month_key" gorm:"type:text;not null;column:schedule_document_month_key;uniqueIndex:uq_schedule_doc_user_month"`

	ScheduleDocumentEvents datatypes.JSON `json:"schedule_document_events" gorm:"type:jsonb;not null;default:'{}';column:schedule_document_events"`

	ScheduleDocumentCreatedAt time.Time `json:"schedule_document_created_at" gorm:"column:schedule_document_created_at;not null;autoCreateTime"`
	ScheduleDocumentUpdatedAt time.Time `json:"schedule_document_updated_at" gorm:"column:schedule_document_updated_at;not null;autoUpdateTime"`
}

func (ScheduleDocumentModel) TableName() string {
	return "schedule_documents"
}

/* =======================================================
   ScheduleCacheModel — map ke tabel schedule_caches

   Shadow copy hasil merge terakhir per (user, bulan).
   Dibaca hanya ketika jalur remote gagal; ditulis ulang
   utuh setiap reconcile sukses.
   ======================================================= */

type ScheduleCacheModel struct {
	ScheduleCacheID uuid.UUID `json:"schedule_cache_id" gorm:"type:uuid;primaryKey;column:schedule_cache_id;default:gen_random_uuid()"`

	ScheduleCacheUserID   uuid.UUID `json:"schedule_cache_user_id" gorm:"type:uuid;not null;column:schedule_cache_user_id;uniqueIndex:uq_schedule_cache_user_month"`
	ScheduleCacheMonthKey string    `json:"schedule_cache_month_key" gorm:"type:text;not null;column:schedule_cache_month_key;uniqueIndex:uq_schedule_cache_user_month"`

	ScheduleCacheEvents datatypes.JSON `json:"schedule_cache_events" gorm:"type:jsonb;not null;default:'{}';column:schedule_cache_events"`

	ScheduleCacheUpdatedAt time.Time `json:"schedule_cache_updated_at" gorm:"column:schedule_cache_updated_at;not null;autoUpdateTime"`
}

func (ScheduleCacheModel) TableName() string {
	return "schedule_caches"
}
