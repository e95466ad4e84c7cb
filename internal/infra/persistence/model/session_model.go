package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuthSessionModel is the GORM-specific struct for the 'auth_sessions' table.
// The session snapshot is stored as a JSONB document; the pairing private
// key never appears in the document and is kept in its own column.
type AuthSessionModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	State             datatypes.JSON `gorm:"type:jsonb;not null"`
	PairingPrivateKey []byte         `gorm:"type:bytea"`
	Version           int64          `gorm:"not null"`
	ExpiresAt         time.Time      `gorm:"not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthSessionModel) TableName() string {
	return "auth_sessions"
}
