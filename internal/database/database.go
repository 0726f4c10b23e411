package database

import (
	"fmt"
	"time"

	"hackathon-dashboard-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipMigrate {
		all := []interface{}{
			&models.Coach{},
			&models.Team{},
			&models.Member{},
			&models.Event{},
			&models.AttendanceRecord{},
			&models.BonusPoint{},
			&models.AuditLog{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		// AutoMigrate cannot express the one-of constraint; add it directly.
		if err := ensureAttendanceCheck(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// ensureAttendanceCheck adds the exactly-one-of-{member,coach} check on
// attendance_records. The same rule is enforced in the service layer; the
// constraint catches raw writes.
func ensureAttendanceCheck(db *gorm.DB) error {
	err := db.Exec(`
		DO $$ BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_attendance_one_of_member_coach'
			) THEN
				ALTER TABLE attendance_records
					ADD CONSTRAINT chk_attendance_one_of_member_coach
					CHECK ((member_id IS NULL) <> (coach_id IS NULL));
			END IF;
		END $$;
	`).Error
	if err != nil {
		return fmt.Errorf("attendance check constraint: %w", err)
	}
	return nil
}
