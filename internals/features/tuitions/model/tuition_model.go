// file: internals/features/tuitions/model/tuition_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   TuitionModel — map ke tabel tuitions

   Satu baris = satu kesepakatan les berulang antara teacher
   dan student. scheduleDays memakai indeks weekday
   0=Minggu .. 6=Sabtu (mengikuti format kalender mobile).
   ======================================================= */

type TuitionModel struct {
	// PK
	TuitionID uuid.UUID `json:"tuition_id" gorm:"type:uuid;primaryKey;column:tuition_id;default:gen_random_uuid()"`

	// Kedua sisi kesepakatan
	TuitionTeacherID uuid.UUID `json:"tuition_teacher_id" gorm:"type:uuid;not null;column:tuition_teacher_id"`
	TuitionStudentID uuid.UUID `json:"tuition_student_id" gorm:"type:uuid;not null;column:tuition_student_id"`

	// Snapshot nama (hindari join saat generate jadwal)
	TuitionTeacherName string `json:"tuition_teacher_name" gorm:"type:text;not null;column:tuition_teacher_name"`
	TuitionStudentName string `json:"tuition_student_name" gorm:"type:text;not null;column:tuition_student_name"`

	// Mata pelajaran (urutan penting: elemen pertama jadi label event)
	TuitionSubjects pq.StringArray `json:"tuition_subjects" gorm:"type:text[];column:tuition_subjects"`

	// Pola mingguan: weekday 0..6
	TuitionScheduleDays pq.Int64Array `json:"tuition_schedule_days" gorm:"type:int[];column:tuition_schedule_days"`

	// Kadens pembayaran berbasis jumlah kelas
	TuitionClassesPerPayday   int `json:"tuition_classes_per_payday" gorm:"type:int;not null;default:0;column:tuition_classes_per_payday"`
	TuitionClassesSincePayday int `json:"tuition_classes_since_payday" gorm:"type:int;not null;default:0;column:tuition_classes_since_payday"`

	// Nominal gaji per payday (Tk.)
	TuitionSalary float64 `json:"tuition_salary" gorm:"type:numeric(12,2);not null;default:0;column:tuition_salary"`

	// Advisory: dipakai untuk tampilan, bukan untuk correctness generate
	TuitionLastPayday *time.Time `json:"tuition_last_payday,omitempty" gorm:"type:date;column:tuition_last_payday"`

	// Timestamps
	TuitionCreatedAt time.Time      `json:"tuition_created_at" gorm:"column:tuition_created_at;not null;autoCreateTime"`
	TuitionUpdatedAt time.Time      `json:"tuition_updated_at" gorm:"column:tuition_updated_at;not null;autoUpdateTime"`
	TuitionDeletedAt gorm.DeletedAt `json:"tuition_deleted_at" gorm:"column:tuition_deleted_at;index"`
}

func (TuitionModel) TableName() string {
	return "tuitions"
}

// CounterpartyName memilih nama pihak lawan menurut role viewer:
// Teacher melihat nama student, Student melihat nama teacher.
func (t *TuitionModel) CounterpartyName(viewerRole string) string {
	if viewerRole == "Teacher" {
		return t.TuitionStudentName
	}
	return t.TuitionTeacherName
}

// PrimarySubject = label subject untuk event kelas.
func (t *TuitionModel) PrimarySubject() string {
	if len(t.TuitionSubjects) > 0 && t.TuitionSubjects[0] != "" {
		return t.TuitionSubjects[0]
	}
	return "General"
}
