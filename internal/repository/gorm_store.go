package repository

import (
	"errors"

	"gorm.io/gorm"
)

// gormStore implements Store on top of a *gorm.DB handle. Atomic wraps
// db.Transaction, so every repository reached through the callback's store
// view operates on the same database transaction.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository { return &userRepo{db: s.db} }

func (s *gormStore) Mofs() MofRepository { return &mofRepo{db: s.db} }

func (s *gormStore) Items() ItemRepository { return &itemRepo{db: s.db} }

func (s *gormStore) PickRecords() PickRecordRepository { return &pickRecordRepo{db: s.db} }

func (s *gormStore) VerificationRecords() VerificationRecordRepository {
	return &verificationRecordRepo{db: s.db}
}

func (s *gormStore) Atomic(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// translateErr maps the GORM miss onto the store-level sentinel.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
