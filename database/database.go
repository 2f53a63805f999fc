package database

import (
	"caces/config"
	"caces/models"
	sessionModels "caces/models/session"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the embedded SQLite database file
func ConnectDb() {
	db, err := gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", config.AppConfig.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// SQLite serializes writes; a single connection avoids SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}

	seedDefaults(db)
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Referentiel{},
		&models.Theme{},
		&models.Bloc{},
		&models.Question{},
		&models.VotingDevice{},
		&models.Trainer{},
		&models.AdminSettings{},
		&sessionModels.Session{},
		&sessionModels.Participant{},
		&sessionModels.SessionResult{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedDefaults creates the single AdminSettings row and a bootstrap
// admin account on an empty database.
func seedDefaults(db *gorm.DB) {
	var count int64
	db.Model(&models.AdminSettings{}).Count(&count)
	if count == 0 {
		settings := models.AdminSettings{
			PassThreshold:     70,
			ThemeFloor:        50,
			StrictEliminatory: true,
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Failed to seed default settings: %v", err)
		} else {
			log.Println("Seeded default admin settings.")
		}
	}

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Failed to hash bootstrap admin password: %v", err)
			return
		}
		admin := models.User{
			Name:     "Administrateur",
			Email:    config.AppConfig.AdminEmail,
			Role:     "ADMIN",
			Password: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Failed to seed bootstrap admin: %v", err)
		} else {
			log.Printf("Seeded bootstrap admin %s - change the password after first login.", admin.Email)
		}
	}
}
