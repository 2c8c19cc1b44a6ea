package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role pengguna TutorX. Nilai ini juga yang menentukan sisi nama
// counterparty yang ditampilkan di jadwal.
const (
	RoleTeacher = "Teacher"
	RoleStudent = "Student"
)

// UserModel merepresentasikan tabel users di database.
// Registrasi/login diurus layanan identity terpisah — backend ini hanya
// membaca profil untuk resolusi role viewer.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Role     string    `gorm:"type:varchar(20);not null;default:'Student'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// GetUserRole membaca role viewer dari tabel users.
func GetUserRole(db *gorm.DB, userID uuid.UUID) (string, error) {
	var row struct {
		Role string
	}
	if err := db.Table("users").Select("role").Where("id = ?", userID).First(&row).Error; err != nil {
		return "", err
	}
	return row.Role, nil
}
