package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutorx_backend/internals/features/tuitions/model"
)

func TestCreateTuitionRequest_Normalize(t *testing.T) {
	req := CreateTuitionRequest{
		TuitionTeacherName: "  Rahim Uddin ",
		TuitionStudentName: "Karima Akter",
		TuitionSubjects:    []string{" Physics ", "", "Math"},
	}

	req.Normalize()

	assert.Equal(t, "Rahim Uddin", req.TuitionTeacherName)
	assert.Equal(t, []string{"Physics", "Math"}, req.TuitionSubjects, "subject kosong dibuang")
}

func TestUpdateTuitionRequest_BuildUpdateMap(t *testing.T) {
	salary := 4500.0
	since := 3
	req := UpdateTuitionRequest{
		TuitionSalary:             &salary,
		TuitionClassesSincePayday: &since,
	}

	up := req.BuildUpdateMap()

	assert.Len(t, up, 2, "hanya kolom yang dikirim")
	assert.Equal(t, 4500.0, up["tuition_salary"])
	assert.Equal(t, 3, up["tuition_classes_since_payday"])
}

func TestUpdateTuitionRequest_EmptyMap(t *testing.T) {
	var req UpdateTuitionRequest
	assert.Empty(t, req.BuildUpdateMap())
}

func TestToTuitionResponse_CounterpartyPerRole(t *testing.T) {
	m := &model.TuitionModel{
		TuitionTeacherName: "Rahim Uddin",
		TuitionStudentName: "Karima Akter",
		TuitionSubjects:    []string{"English"},
	}

	asTeacher := ToTuitionResponse(m, "Teacher", nil)
	assert.Equal(t, "Karima Akter", asTeacher.CounterpartyName)

	asStudent := ToTuitionResponse(m, "Student", nil)
	assert.Equal(t, "Rahim Uddin", asStudent.CounterpartyName)
}
