package repository

import (
	"go-mof-tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (r *itemRepo) FindBySerial(serial string) (*model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "serial_number = ?", serial).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

// FindBySerialForUpdate locks the row (Pessimistic Locking) so two
// concurrent scans cannot both pass the not-yet-picked check.
func (r *itemRepo) FindBySerialForUpdate(serial string) (*model.Item, error) {
	var item model.Item
	if err := r.db.Set("gorm:query_option", "FOR UPDATE").First(&item, "serial_number = ?", serial).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (r *itemRepo) FindAll() ([]model.Item, error) {
	var items []model.Item
	err := r.db.Preload("Mof").Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByMof(mofID uuid.UUID) ([]model.Item, error) {
	var items []model.Item
	err := r.db.Where("mof_id = ?", mofID).Find(&items).Error
	return items, err
}

func (r *itemRepo) CountPicked(mofID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Item{}).
		Where("mof_id = ? AND picked_by_picker = ?", mofID, true).
		Count(&count).Error
	return count, err
}

func (r *itemRepo) CountVerified(mofID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Item{}).
		Where("mof_id = ? AND verified_by_requester = ?", mofID, true).
		Count(&count).Error
	return count, err
}

func (r *itemRepo) Save(item *model.Item) error {
	return r.db.Save(item).Error
}
