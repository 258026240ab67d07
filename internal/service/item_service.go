package service

import (
	"errors"

	"go-mof-tracker/internal/model"
	"go-mof-tracker/internal/repository"
	"go-mof-tracker/pkg/validator"
)

// ItemService covers the item side of the lifecycle. Items enter the system
// unassigned; only the scan engine ever binds them to a MOF.
type ItemService interface {
	CreateItem(req *CreateItemRequest) (*model.Item, error)
	GetAllItems() ([]model.Item, error)
}

type CreateItemRequest struct {
	SerialNumber string `json:"serial_number" validate:"required"`
	PartNumber   string `json:"part_number" validate:"required"`
	Supplier     string `json:"supplier"`
}

type itemService struct {
	store repository.Store
}

func NewItemService(store repository.Store) ItemService {
	return &itemService{store: store}
}

func (s *itemService) CreateItem(req *CreateItemRequest) (*model.Item, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.FormatError(errs[0]))
	}

	// Cek duplikasi serial number
	existing, err := s.store.Items().FindBySerial(req.SerialNumber)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateSerial
	}

	item := &model.Item{
		SerialNumber: req.SerialNumber,
		PartNumber:   req.PartNumber,
		Supplier:     req.Supplier,
	}
	if err := s.store.Items().Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetAllItems() ([]model.Item, error) {
	return s.store.Items().FindAll()
}
