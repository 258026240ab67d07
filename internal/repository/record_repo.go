package repository

import (
	"go-mof-tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pickRecordRepo struct {
	db *gorm.DB
}

func NewPickRecordRepo(db *gorm.DB) PickRecordRepository {
	return &pickRecordRepo{db: db}
}

func (r *pickRecordRepo) Create(rec *model.PickRecord) error {
	return r.db.Create(rec).Error
}

func (r *pickRecordRepo) FindByMof(mofID uuid.UUID) ([]model.PickRecord, error) {
	var records []model.PickRecord
	err := r.db.Preload("Item").Preload("PickedBy").
		Where("mof_id = ?", mofID).Order("picked_at ASC").Find(&records).Error
	return records, err
}

type verificationRecordRepo struct {
	db *gorm.DB
}

func NewVerificationRecordRepo(db *gorm.DB) VerificationRecordRepository {
	return &verificationRecordRepo{db: db}
}

func (r *verificationRecordRepo) Create(rec *model.VerificationRecord) error {
	return r.db.Create(rec).Error
}

func (r *verificationRecordRepo) FindByMof(mofID uuid.UUID) ([]model.VerificationRecord, error) {
	var records []model.VerificationRecord
	err := r.db.Preload("Item").Preload("VerifiedBy").
		Where("mof_id = ?", mofID).Order("verified_at ASC").Find(&records).Error
	return records, err
}
