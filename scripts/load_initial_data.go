package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"event-portal-backend/internal/config"
	"event-portal-backend/internal/database"
	"event-portal-backend/internal/database/models"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/service"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ParticipantData matches one record of the exported registration dump.
type ParticipantData struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func main() {
	log.Println("🚀 Loading initial data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath()), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}
	db, err := database.Initialize(cfg.DatabasePath(), opts)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	dataDir := filepath.Join("scripts", "data")
	if err := loadCatalogs(db, dataDir); err != nil {
		log.Fatalf("Failed to load catalogs: %v", err)
	}
	if err := loadParticipants(db, dataDir); err != nil {
		log.Fatalf("Failed to load participants: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// loadCatalogs imports challenges.csv and checkpoints.csv. Either file
// may be absent.
func loadCatalogs(db *gorm.DB, dataDir string) error {
	catalogService := service.NewCatalogService(repository.NewCatalogRepository(db))

	challengesPath := filepath.Join(dataDir, "challenges.csv")
	if f, err := os.Open(challengesPath); err == nil {
		defer f.Close()
		count, err := catalogService.ImportChallenges(f)
		if err != nil {
			return fmt.Errorf("import challenges: %w", err)
		}
		log.Printf("Imported %d challenges", count)
	} else if !os.IsNotExist(err) {
		return err
	}

	checkpointsPath := filepath.Join(dataDir, "checkpoints.csv")
	if f, err := os.Open(checkpointsPath); err == nil {
		defer f.Close()
		count, err := catalogService.ImportCheckpoints(f)
		if err != nil {
			return fmt.Errorf("import checkpoints: %w", err)
		}
		log.Printf("Imported %d checkpoints", count)
	} else if !os.IsNotExist(err) {
		return err
	}

	return nil
}

// loadParticipants imports an optional participants.json dump. Existing
// rows keep their edited profile fields.
func loadParticipants(db *gorm.DB, dataDir string) error {
	path := filepath.Join(dataDir, "participants.json")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var records []ParticipantData
	if err := json.Unmarshal(content, &records); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	participants := make([]models.Participant, len(records))
	for i, r := range records {
		participants[i] = models.Participant{
			ID:      r.ID,
			Email:   strings.ToLower(r.Email),
			NameWeb: strings.TrimSpace(r.FirstName + " " + r.LastName),
		}
	}

	repo := repository.NewParticipantRepository(db)
	if err := repo.UpsertAll(participants); err != nil {
		return fmt.Errorf("upsert participants: %w", err)
	}
	log.Printf("Imported %d participants", len(participants))
	return nil
}
