package main

import (
	"break-planner-backend/internal/config"
	"break-planner-backend/internal/database"
	"break-planner-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RosterEntryData struct {
	UserName string `yaml:"user_name"`
	Date     string `yaml:"date"`
	Shift    string `yaml:"shift"`
	Location string `yaml:"location"`
}

type CustomSlotData struct {
	Date            string `yaml:"date"`
	Shift           string `yaml:"shift"`
	Location        string `yaml:"location"`
	StartTime       string `yaml:"start_time"`
	DurationMinutes int    `yaml:"duration_minutes"`
	Capacity        int    `yaml:"capacity,omitempty"`
	Label           string `yaml:"label,omitempty"`
}

// File structures
type RosterFile struct {
	Roster []RosterEntryData `yaml:"roster"`
}

type CustomSlotsFile struct {
	CustomSlots []CustomSlotData `yaml:"custom_slots"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	rosterEntries, err := loadRosterEntries(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load roster entries: %w", err)
	}

	customSlots, err := loadCustomSlots(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load custom slots: %w", err)
	}

	// Create roster entries; remember the user id assigned to each name so
	// repeated names across dates map to the same staff member
	userIDs := make(map[string]uuid.UUID)
	rosterCreated := 0
	for _, entryData := range rosterEntries {
		created, err := createRosterEntry(db, entryData, userIDs)
		if err != nil {
			return fmt.Errorf("failed to create roster entry %s: %w", entryData.UserName, err)
		}
		if created {
			rosterCreated++
		}
	}
	log.Printf("📋 Roster entries: %d created, %d total", rosterCreated, len(rosterEntries))

	// Create custom break slots
	slotCreated := 0
	for _, slotData := range customSlots {
		created, err := createCustomSlot(db, slotData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create custom slot %s %s: %v", slotData.Date, slotData.StartTime, err)
			continue // Continue with other slots
		}
		if created {
			slotCreated++
		}
	}
	log.Printf("📋 Custom slots: %d created, %d total", slotCreated, len(customSlots))

	return nil
}

func loadRosterEntries(dataDir string) ([]RosterEntryData, error) {
	var allEntries []RosterEntryData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "roster") {
			var file RosterFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEntries = append(allEntries, file.Roster...)
		}
		return nil
	})

	return allEntries, err
}

func loadCustomSlots(dataDir string) ([]CustomSlotData, error) {
	var allSlots []CustomSlotData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "slots") {
			var file CustomSlotsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSlots = append(allSlots, file.CustomSlots...)
		}
		return nil
	})

	return allSlots, err
}

func createRosterEntry(db *gorm.DB, entryData RosterEntryData, userIDs map[string]uuid.UUID) (bool, error) {
	date, err := time.Parse("2006-01-02", entryData.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", entryData.Date, err)
	}

	shift := models.ShiftType(entryData.Shift)
	if !shift.IsValid() {
		return false, fmt.Errorf("invalid shift %q", entryData.Shift)
	}

	userID, ok := userIDs[entryData.UserName]
	if !ok {
		// Reuse the id of an earlier entry for the same name, if any
		var existing models.RosterEntry
		if err := db.Where("user_name = ?", entryData.UserName).First(&existing).Error; err == nil {
			userID = existing.UserID
		} else if err == gorm.ErrRecordNotFound {
			userID = uuid.New()
		} else {
			return false, fmt.Errorf("failed to query roster entry: %w", err)
		}
		userIDs[entryData.UserName] = userID
	}

	var entry models.RosterEntry
	err = db.Where("user_id = ? AND date = ? AND shift_type = ?", userID, entryData.Date, shift).First(&entry).Error
	if err == nil {
		return false, nil // created = false (existing)
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query roster entry: %w", err)
	}

	entry = models.RosterEntry{
		UserID:    userID,
		UserName:  entryData.UserName,
		Date:      date,
		ShiftType: shift,
		Location:  entryData.Location,
	}
	if err := db.Create(&entry).Error; err != nil {
		return false, fmt.Errorf("failed to create roster entry: %w", err)
	}
	return true, nil // created = true
}

func createCustomSlot(db *gorm.DB, slotData CustomSlotData) (bool, error) {
	date, err := time.Parse("2006-01-02", slotData.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", slotData.Date, err)
	}

	shift := models.ShiftType(slotData.Shift)
	if !shift.IsValid() {
		return false, fmt.Errorf("invalid shift %q", slotData.Shift)
	}

	var slot models.BreakSlot
	err = db.Where("date = ? AND shift_type = ? AND location = ? AND start_time = ?",
		slotData.Date, shift, slotData.Location, slotData.StartTime).First(&slot).Error
	if err == nil {
		return false, nil // created = false (existing)
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query custom slot: %w", err)
	}

	capacity := slotData.Capacity
	if capacity <= 0 {
		capacity = 1
	}

	label := slotData.Label
	if label == "" {
		label = fmt.Sprintf("Extra Break (%d min)", slotData.DurationMinutes)
	}

	slot = models.BreakSlot{
		Date:            date,
		ShiftType:       shift,
		Location:        slotData.Location,
		StartTime:       slotData.StartTime,
		DurationMinutes: slotData.DurationMinutes,
		Capacity:        capacity,
		Label:           label,
	}
	if err := db.Create(&slot).Error; err != nil {
		return false, fmt.Errorf("failed to create custom slot: %w", err)
	}
	return true, nil // created = true
}
