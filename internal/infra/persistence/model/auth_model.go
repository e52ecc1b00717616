package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. (provider, external_id) is unique.
type IdentityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_identities_provider_external_id"`
	ExternalID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_identities_provider_external_id"`
	SecondaryID *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// ProviderTokenRecordModel mirrors the 'provider_token_records' table. Only ciphertext is stored.
type ProviderTokenRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	IdentityID   uuid.UUID `gorm:"type:uuid;not null;index:idx_provider_token_records_identity_created,priority:1"`
	EncAccess    []byte    `gorm:"type:bytea;not null"`
	NonceAccess  []byte    `gorm:"type:bytea;not null"`
	EncRefresh   []byte    `gorm:"type:bytea"`
	NonceRefresh []byte    `gorm:"type:bytea"`
	CreatedAt    time.Time `gorm:"index:idx_provider_token_records_identity_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderTokenRecordModel) TableName() string {
	return "provider_token_records"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. UUID columns align with PostgreSQL schema.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
