package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is one physical serialized unit. It is created unassigned; a
// successful scan binds it to a MOF, a successful verification confirms
// receipt. The MOF reference, once set, never changes.
type Item struct {
	BaseModel
	SerialNumber string `gorm:"type:varchar(100);uniqueIndex;not null" json:"serial_number"`
	PartNumber   string `gorm:"type:varchar(100);not null" json:"part_number"`
	Supplier     string `gorm:"type:varchar(255)" json:"supplier"`

	PickedByPicker      bool `gorm:"default:false" json:"picked_by_picker"`
	VerifiedByRequester bool `gorm:"default:false" json:"verified_by_requester"`

	MofID *uuid.UUID `gorm:"type:uuid;index" json:"mof_id,omitempty"`
	Mof   *Mof       `gorm:"foreignKey:MofID" json:"mof,omitempty"`

	PickedAt   *time.Time `json:"picked_at,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}
