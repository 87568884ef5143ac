package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel    logger.LogLevel
	BusyTimeout time.Duration
}

// schema reproduces the persisted layout exactly; existing tables are
// never altered, so creation is safe to run on every startup.
var schema = []string{
	`CREATE TABLE if not exists participants (
		id text not null unique,
		email text not null,
		name_web text not null,
		bio text,
		emergency_contact text,
		photo text,
		primary key(id)
	);`,
	`CREATE TABLE if not exists teams (
		team_id text not null unique,
		team_name text not null,
		member1 text not null,
		member2 text,
		member3 text,
		team_motto text,
		team_web text,
		team_photo text,
		location_visibility integer default 1,
		primary key(team_id)
	);`,
	`CREATE TABLE if not exists posts (
		post_id text not null unique,
		pax_id text not null,
		team_id text,
		action_type text not null,
		action_name text not null,
		comment text not null,
		created text not null,
		files text not null,
		primary key(post_id)
	);`,
	`CREATE TABLE if not exists locations (
		username text not null,
		team_id text,
		comment text,
		longitude float not null,
		latitude float not null,
		accuracy text,
		altitude text,
		altitude_accuracy text,
		heading text,
		speed text,
		date text not null
	);`,
	`CREATE TABLE if not exists challenges (
		name text not null unique,
		description text not null,
		category text not null,
		points int not null,
		primary key(name)
	);`,
	`CREATE TABLE if not exists checkpoints (
		name text not null unique,
		description text not null,
		points int not null,
		latitude float,
		longitude float,
		challenge text,
		primary key(name)
	);`,
	`CREATE TABLE if not exists notifications (
		text text not null,
		type text
	);`,
}

// Initialize opens the per-event SQLite database and creates the schema.
// The returned handle holds a single shared connection: SQLite's own
// single-writer serialization is the only concurrency guard, and every
// statement commits individually.
func Initialize(path string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.BusyTimeout == 0 {
		opts.BusyTimeout = 5 * time.Second
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		// One shared connection, used from concurrent request handlers.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds())).Error; err != nil {
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := CreateTables(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CreateTables creates all tables idempotently.
func CreateTables(db *gorm.DB) error {
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}
