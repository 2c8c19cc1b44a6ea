package tuition

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorx_backend/internals/features/tuitions/model"
	userModel "tutorx_backend/internals/features/users/user/model"
)

type TuitionSeed struct {
	TeacherEmail       string   `json:"teacher_email"`
	StudentEmail       string   `json:"student_email"`
	Subjects           []string `json:"subjects"`
	ScheduleDays       []int64  `json:"schedule_days"`
	ClassesPerPayday   int      `json:"classes_per_payday"`
	ClassesSincePayday int      `json:"classes_since_payday"`
	Salary             float64  `json:"salary"`
}

func SeedTuitionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file tuition:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []TuitionSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		teacher, ok := findUser(db, data.TeacherEmail)
		if !ok {
			continue
		}
		student, ok := findUser(db, data.StudentEmail)
		if !ok {
			continue
		}

		var count int64
		db.Model(&model.TuitionModel{}).
			Where("tuition_teacher_id = ? AND tuition_student_id = ?", teacher.ID, student.ID).
			Count(&count)
		if count > 0 {
			log.Printf("ℹ️ Tuition %s ↔ %s sudah ada, dilewati.", data.TeacherEmail, data.StudentEmail)
			continue
		}

		row := model.TuitionModel{
			TuitionID:                 uuid.New(),
			TuitionTeacherID:          teacher.ID,
			TuitionStudentID:          student.ID,
			TuitionTeacherName:        teacher.UserName,
			TuitionStudentName:        student.UserName,
			TuitionSubjects:           data.Subjects,
			TuitionScheduleDays:       data.ScheduleDays,
			TuitionClassesPerPayday:   data.ClassesPerPayday,
			TuitionClassesSincePayday: data.ClassesSincePayday,
			TuitionSalary:             data.Salary,
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert tuition %s ↔ %s: %v", data.TeacherEmail, data.StudentEmail, err)
		} else {
			log.Printf("✅ Berhasil insert tuition %s ↔ %s", data.TeacherEmail, data.StudentEmail)
		}
	}
}

func findUser(db *gorm.DB, email string) (userModel.UserModel, bool) {
	var u userModel.UserModel
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		log.Printf("❌ User '%s' belum ada, seed user dulu.", email)
		return u, false
	}
	return u, true
}
