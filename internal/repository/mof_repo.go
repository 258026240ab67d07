package repository

import (
	"go-mof-tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mofRepo struct {
	db *gorm.DB
}

func NewMofRepo(db *gorm.DB) MofRepository {
	return &mofRepo{db: db}
}

func (r *mofRepo) Create(mof *model.Mof) error {
	return r.db.Create(mof).Error
}

func (r *mofRepo) FindByID(id uuid.UUID) (*model.Mof, error) {
	var mof model.Mof
	if err := r.db.Preload("CreatedByUser").First(&mof, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &mof, nil
}

func (r *mofRepo) FindBySerial(serial string) (*model.Mof, error) {
	var mof model.Mof
	if err := r.db.First(&mof, "serial_number = ?", serial).Error; err != nil {
		return nil, translateErr(err)
	}
	return &mof, nil
}

// FindBySerialForUpdate locks the row (Pessimistic Locking) so the status
// recompute inside the surrounding transaction sees a consistent count.
func (r *mofRepo) FindBySerialForUpdate(serial string) (*model.Mof, error) {
	var mof model.Mof
	if err := r.db.Set("gorm:query_option", "FOR UPDATE").First(&mof, "serial_number = ?", serial).Error; err != nil {
		return nil, translateErr(err)
	}
	return &mof, nil
}

func (r *mofRepo) FindAll() ([]model.Mof, error) {
	var mofs []model.Mof
	err := r.db.Preload("CreatedByUser").Order("created_at DESC").Find(&mofs).Error
	return mofs, err
}

func (r *mofRepo) FindByCreator(userID uuid.UUID) ([]model.Mof, error) {
	var mofs []model.Mof
	err := r.db.Preload("CreatedByUser").Where("created_by_id = ?", userID).Order("created_at DESC").Find(&mofs).Error
	return mofs, err
}

func (r *mofRepo) Save(mof *model.Mof) error {
	return r.db.Save(mof).Error
}
