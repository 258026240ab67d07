package model

import (
	"time"

	"github.com/google/uuid"
)

// MofStatus is the lifecycle status of a Material Outgoing Form.
type MofStatus string

const (
	MofStatusPending     MofStatus = "Pending"
	MofStatusInProgress  MofStatus = "In Progress"
	MofStatusReadySupply MofStatus = "MOF siap Supply"
	MofStatusCompleted   MofStatus = "Completed"
)

// statusRank orders statuses along the pick/verify lifecycle. Scan- and
// verify-driven transitions never move a MOF to a lower rank.
var statusRank = map[MofStatus]int{
	MofStatusPending:     0,
	MofStatusInProgress:  1,
	MofStatusReadySupply: 2,
	MofStatusCompleted:   3,
}

// Valid reports whether s is one of the known statuses.
func (s MofStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank returns the position of s in the lifecycle order.
func (s MofStatus) Rank() int {
	return statusRank[s]
}

// Mof (Material Outgoing Form) represents one outstanding material request.
type Mof struct {
	BaseModel
	SerialNumber          string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"serial_number"`
	PartNumber            string    `gorm:"type:varchar(100);not null" json:"part_number"`
	QuantityRequested     int       `gorm:"not null" json:"quantity_requested"`
	ExpectedReceivingDate time.Time `gorm:"type:date" json:"expected_receiving_date"`
	RequesterName         string    `gorm:"type:varchar(255)" json:"requester_name"`
	Department            string    `gorm:"type:varchar(100)" json:"department"`
	Project               string    `gorm:"type:varchar(100)" json:"project"`
	Status                MofStatus `gorm:"type:varchar(30);not null;default:'Pending'" json:"status"`

	// User tracking
	CreatedByID   uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedByUser *User     `gorm:"foreignKey:CreatedByID" json:"created_by_user,omitempty"`
}
