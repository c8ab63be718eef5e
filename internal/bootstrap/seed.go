package bootstrap

import (
	"log"

	"anoa.com/wisatapedia/internal/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Profile{},
		&entity.Continent{},
		&entity.Country{},
		&entity.Region{},
		&entity.District{},
		&entity.Ward{},
		&entity.Location{},
		&entity.Accommodation{},
		&entity.Food{},
		&entity.Organizer{},
		&entity.Event{},
		&entity.Article{},
		&entity.CommunityPost{},
		&entity.Comment{},
		&entity.Rating{},
		&entity.Media{},
		&entity.Reaction{},
		&entity.Notification{},
	)
}

func SeedRoles(db *gorm.DB) error {
	defaultRoles := []entity.Role{
		{Name: entity.RoleAdmin, Description: "Super administrator"},
		{Name: entity.RoleEditor, Description: "Content editor"},
		{Name: entity.RoleMember, Description: "Community member"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&entity.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func SeedAdminUser(db *gorm.DB) error {
	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", "admin@wisatapedia.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := entity.User{
		Username:     "admin",
		Email:        "admin@wisatapedia.local",
		PasswordHash: string(hashed),
		RoleID:       &adminRole.ID,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	bio := "System administrator"
	adminProfile := entity.Profile{
		UserID:   adminUser.ID,
		FullName: "Administrator",
		Bio:      &bio,
	}

	if err := db.Create(&adminProfile).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded (admin@wisatapedia.local / admin123)")
	return nil
}
