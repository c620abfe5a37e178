package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Credential is the single persisted row. The bearer token is the only
// client-side durable state; everything else is refetched from the backend.
type Credential struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Store keeps the bearer token in a local sqlite file and mirrors it in
// memory so request issue never touches disk.
type Store struct {
	db *gorm.DB

	mu    sync.RWMutex
	token string
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if err := db.AutoMigrate(&Credential{}); err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}

	s := &Store{db: db}
	var cred Credential
	if err := db.First(&cred, 1).Error; err == nil {
		s.token = cred.Token
	}
	return s, nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Store(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred := Credential{ID: 1, Token: token, UpdatedAt: time.Now()}
	if err := s.db.Save(&cred).Error; err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.token = token
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := s.db.Delete(&Credential{}, 1).Error; err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
