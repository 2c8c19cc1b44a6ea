package seeds

import (
	"gorm.io/gorm"

	tuition "tutorx_backend/internals/seeds/tuitions"
	user "tutorx_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* Users (profil read-only, identity service yang punya akunnya)
	user.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Tuitions (kesepakatan demo teacher ↔ student)
	tuition.SeedTuitionsFromJSON(db, "internals/seeds/tuitions/data_tuitions.json")
}
