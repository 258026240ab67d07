package model

import (
	"time"

	"github.com/google/uuid"
)

// PickRecord is the append-only audit event written once per successful scan.
// Records are never updated or deleted.
type PickRecord struct {
	BaseModel
	MofID      uuid.UUID `gorm:"type:uuid;not null;index" json:"mof_id"`
	Mof        *Mof      `gorm:"foreignKey:MofID" json:"mof,omitempty"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	Item       *Item     `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	PickedByID uuid.UUID `gorm:"type:uuid;not null" json:"picked_by_id"`
	PickedBy   *User     `gorm:"foreignKey:PickedByID" json:"picked_by,omitempty"`
	PickedAt   time.Time `gorm:"not null" json:"picked_at"`
}

// VerificationRecord is the append-only audit event written once per
// successful verification.
type VerificationRecord struct {
	BaseModel
	MofID        uuid.UUID `gorm:"type:uuid;not null;index" json:"mof_id"`
	Mof          *Mof      `gorm:"foreignKey:MofID" json:"mof,omitempty"`
	ItemID       uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	Item         *Item     `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	VerifiedByID uuid.UUID `gorm:"type:uuid;not null" json:"verified_by_id"`
	VerifiedBy   *User     `gorm:"foreignKey:VerifiedByID" json:"verified_by,omitempty"`
	VerifiedAt   time.Time `gorm:"not null" json:"verified_at"`
}
