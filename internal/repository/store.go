package repository

import (
	"errors"

	"go-mof-tracker/internal/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned by the Find methods when no row matches. Both the
// GORM store and the in-memory store translate their native miss into it so
// the services can test with errors.Is.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uuid.UUID) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll() ([]model.User, error)
}

type MofRepository interface {
	Create(mof *model.Mof) error
	FindByID(id uuid.UUID) (*model.Mof, error)
	FindBySerial(serial string) (*model.Mof, error)
	// FindBySerialForUpdate locks the MOF row for the duration of the
	// surrounding Atomic block.
	FindBySerialForUpdate(serial string) (*model.Mof, error)
	FindAll() ([]model.Mof, error)
	FindByCreator(userID uuid.UUID) ([]model.Mof, error)
	Save(mof *model.Mof) error
}

type ItemRepository interface {
	Create(item *model.Item) error
	FindByID(id uuid.UUID) (*model.Item, error)
	FindBySerial(serial string) (*model.Item, error)
	// FindBySerialForUpdate locks the item row for the duration of the
	// surrounding Atomic block.
	FindBySerialForUpdate(serial string) (*model.Item, error)
	FindAll() ([]model.Item, error)
	FindByMof(mofID uuid.UUID) ([]model.Item, error)
	CountPicked(mofID uuid.UUID) (int64, error)
	CountVerified(mofID uuid.UUID) (int64, error)
	Save(item *model.Item) error
}

type PickRecordRepository interface {
	Create(rec *model.PickRecord) error
	FindByMof(mofID uuid.UUID) ([]model.PickRecord, error)
}

type VerificationRecordRepository interface {
	Create(rec *model.VerificationRecord) error
	FindByMof(mofID uuid.UUID) ([]model.VerificationRecord, error)
}

// Store bundles the per-entity repositories behind a single handle. Atomic
// runs fn against a store view whose writes either all commit or all roll
// back; the scan/verify engines wrap their mutate+record+recompute sequence
// in it so no record is ever left without the matching item mutation.
type Store interface {
	Users() UserRepository
	Mofs() MofRepository
	Items() ItemRepository
	PickRecords() PickRecordRepository
	VerificationRecords() VerificationRecordRepository
	Atomic(fn func(Store) error) error
}
