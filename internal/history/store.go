// Package history persists completed generations in SQLite.
package history

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/id01t/bookforge/internal/entities"
)

// ErrNotFound is returned when a history entry does not exist.
var ErrNotFound = errors.New("history entry not found")

const excerptRunes = 80

// Summary is the listing view of an entry. The prompt is truncated so list
// responses stay small even when prompts carry whole tables of contents.
type Summary struct {
	ID            uint      `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	PromptExcerpt string    `json:"prompt_excerpt"`
	Provider      string    `json:"provider"`
	Model         string    `json:"model"`
}

type Store struct {
	DB *gorm.DB
}

func NewStore(dbPath string) (*Store, error) {
	dsn := dbPath
	if !strings.Contains(dsn, "?") {
		dsn += "?_journal_mode=WAL"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.HistoryEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("History store initialized at %s", dbPath)

	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record stores a completed generation and returns the new entry ID.
func (s *Store) Record(prompt, output, provider, model string) (uint, error) {
	entry := &entities.HistoryEntry{
		Prompt:   prompt,
		Output:   output,
		Provider: provider,
		Model:    model,
	}
	if err := s.DB.Create(entry).Error; err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// List returns summaries most recent first, plus the total entry count.
func (s *Store) List(limit, offset int) ([]Summary, int64, error) {
	var total int64
	if err := s.DB.Model(&entities.HistoryEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := s.DB.Model(&entities.HistoryEntry{}).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var entries []entities.HistoryEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, Summary{
			ID:            entry.ID,
			CreatedAt:     entry.CreatedAt,
			PromptExcerpt: excerpt(entry.Prompt),
			Provider:      entry.Provider,
			Model:         entry.Model,
		})
	}
	return summaries, total, nil
}

func (s *Store) Get(id uint) (*entities.HistoryEntry, error) {
	var entry entities.HistoryEntry
	err := s.DB.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Store) Count() (int64, error) {
	var total int64
	err := s.DB.Model(&entities.HistoryEntry{}).Count(&total).Error
	return total, err
}

// Checkpoint truncates the WAL so the main database file stays current.
func (s *Store) Checkpoint() error {
	return s.DB.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error
}

func excerpt(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= excerptRunes {
		return prompt
	}
	return string(runes[:excerptRunes])
}
