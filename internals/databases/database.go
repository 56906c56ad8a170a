package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	inquiryModel "tutorku_backend/internals/features/contact/inquiries/model"
	studentModel "tutorku_backend/internals/features/students/requests/model"
	tutorModel "tutorku_backend/internals/features/tutors/applications/model"
	userModel "tutorku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tutorku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		TranslateError: true, // supaya unique violation jadi gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateAll menjalankan automigrate semua model.
// Unique index tutor_application_user_id ikut terpasang di sini — itu
// sumber kebenaran anti duplikat aplikasi, bukan pre-check di controller.
func MigrateAll() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&tutorModel.TutorApplicationModel{},
		&studentModel.StudentRequestModel{},
		&inquiryModel.TutorInquiryModel{},
	); err != nil {
		log.Fatalf("❌ Gagal automigrate: %v", err)
	}
	log.Println("✅ Automigrate selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
