// Package testutil opens throwaway seeded databases for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"foodapp-api/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Seeded IDs, in the order config.Seed creates them on an empty database.
const (
	AdminID        uint = 1 // Nick Fury, INDIA
	ManagerIndiaID uint = 2 // Captain Marvel
	ManagerUSID    uint = 3 // Captain America
	MemberIndiaID  uint = 4 // Thanos
	MemberIndia2ID uint = 5 // Thor
	MemberUSID     uint = 6 // Travis

	PaneerTikkaID    uint = 1 // INDIA, 500
	MasalaDosaID     uint = 2 // INDIA, 350
	CheeseburgerID   uint = 3 // AMERICA, 899
	SourdoughPizzaID uint = 4 // AMERICA, 1299

	MumbaiMasalaID uint = 1
	NewYorkNoshID  uint = 3
)

// NewDB returns a migrated sqlite database in the test's temp dir
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	src := filepath.Join(t.TempDir(), "test.db")
	db, err := config.OpenDB(config.Database{Driver: config.DriverSQLite, Source: src}, "warn")
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewSeededDB returns NewDB with the demo data loaded
func NewSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := NewDB(t)
	require.NoError(t, config.Seed(db))
	return db
}
