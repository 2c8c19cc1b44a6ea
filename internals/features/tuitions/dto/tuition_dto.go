// file: internals/features/tuitions/dto/tuition_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tutorx_backend/internals/features/tuitions/model"
)

/* =======================================================
   REQUEST DTOs (CREATE / UPDATE)
   ======================================================= */

type CreateTuitionRequest struct {
	TuitionTeacherID   uuid.UUID `json:"tuition_teacher_id" validate:"required"`
	TuitionStudentID   uuid.UUID `json:"tuition_student_id" validate:"required"`
	TuitionTeacherName string    `json:"tuition_teacher_name" validate:"required,max=100"`
	TuitionStudentName string    `json:"tuition_student_name" validate:"required,max=100"`

	TuitionSubjects     []string `json:"tuition_subjects" validate:"required,min=1,dive,max=50"`
	TuitionScheduleDays []int64  `json:"tuition_schedule_days" validate:"required,min=1,max=7,dive,min=0,max=6"`

	TuitionClassesPerPayday   int     `json:"tuition_classes_per_payday" validate:"min=0"`
	TuitionClassesSincePayday int     `json:"tuition_classes_since_payday" validate:"min=0"`
	TuitionSalary             float64 `json:"tuition_salary" validate:"min=0"`

	TuitionLastPayday *time.Time `json:"tuition_last_payday,omitempty"`
}

func (r *CreateTuitionRequest) Normalize() {
	r.TuitionTeacherName = strings.TrimSpace(r.TuitionTeacherName)
	r.TuitionStudentName = strings.TrimSpace(r.TuitionStudentName)
	out := r.TuitionSubjects[:0]
	for _, s := range r.TuitionSubjects {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	r.TuitionSubjects = out
}

func (r *CreateTuitionRequest) ToModel() *model.TuitionModel {
	return &model.TuitionModel{
		TuitionTeacherID:          r.TuitionTeacherID,
		TuitionStudentID:          r.TuitionStudentID,
		TuitionTeacherName:        r.TuitionTeacherName,
		TuitionStudentName:        r.TuitionStudentName,
		TuitionSubjects:           pq.StringArray(r.TuitionSubjects),
		TuitionScheduleDays:       pq.Int64Array(r.TuitionScheduleDays),
		TuitionClassesPerPayday:   r.TuitionClassesPerPayday,
		TuitionClassesSincePayday: r.TuitionClassesSincePayday,
		TuitionSalary:             r.TuitionSalary,
		TuitionLastPayday:         r.TuitionLastPayday,
	}
}

type UpdateTuitionRequest struct {
	TuitionSubjects     *[]string `json:"tuition_subjects,omitempty" validate:"omitempty,min=1,dive,max=50"`
	TuitionScheduleDays *[]int64  `json:"tuition_schedule_days,omitempty" validate:"omitempty,min=1,max=7,dive,min=0,max=6"`

	TuitionClassesPerPayday   *int     `json:"tuition_classes_per_payday,omitempty" validate:"omitempty,min=0"`
	TuitionClassesSincePayday *int     `json:"tuition_classes_since_payday,omitempty" validate:"omitempty,min=0"`
	TuitionSalary             *float64 `json:"tuition_salary,omitempty" validate:"omitempty,min=0"`

	TuitionLastPayday *time.Time `json:"tuition_last_payday,omitempty"`
}

// BuildUpdateMap hanya menyentuh kolom yang dikirim.
func (r *UpdateTuitionRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.TuitionSubjects != nil {
		up["tuition_subjects"] = pq.StringArray(*r.TuitionSubjects)
	}
	if r.TuitionScheduleDays != nil {
		up["tuition_schedule_days"] = pq.Int64Array(*r.TuitionScheduleDays)
	}
	if r.TuitionClassesPerPayday != nil {
		up["tuition_classes_per_payday"] = *r.TuitionClassesPerPayday
	}
	if r.TuitionClassesSincePayday != nil {
		up["tuition_classes_since_payday"] = *r.TuitionClassesSincePayday
	}
	if r.TuitionSalary != nil {
		up["tuition_salary"] = *r.TuitionSalary
	}
	if r.TuitionLastPayday != nil {
		up["tuition_last_payday"] = *r.TuitionLastPayday
	}
	return up
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type TuitionResponse struct {
	TuitionID          uuid.UUID `json:"tuition_id"`
	CounterpartyName   string    `json:"counterparty_name"`
	TuitionSubjects    []string  `json:"tuition_subjects"`
	ScheduleDays       []int64   `json:"schedule_days"`
	ClassesPerPayday   int       `json:"classes_per_payday"`
	ClassesSincePayday int       `json:"classes_since_payday"`
	Salary             float64   `json:"salary"`

	// Turunan untuk kartu list (dihitung saat respond)
	NextClassDate *string `json:"next_class_date,omitempty"`
	LastPayday    *string `json:"last_payday,omitempty"`
}

func ToTuitionResponse(m *model.TuitionModel, viewerRole string, nextClassDate *string) TuitionResponse {
	resp := TuitionResponse{
		TuitionID:          m.TuitionID,
		CounterpartyName:   m.CounterpartyName(viewerRole),
		TuitionSubjects:    []string(m.TuitionSubjects),
		ScheduleDays:       []int64(m.TuitionScheduleDays),
		ClassesPerPayday:   m.TuitionClassesPerPayday,
		ClassesSincePayday: m.TuitionClassesSincePayday,
		Salary:             m.TuitionSalary,
		NextClassDate:      nextClassDate,
	}
	if m.TuitionLastPayday != nil {
		s := m.TuitionLastPayday.Format("2006-01-02")
		resp.LastPayday = &s
	}
	return resp
}
