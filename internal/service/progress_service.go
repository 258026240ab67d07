package service

import (
	"errors"

	"go-mof-tracker/internal/model"
	"go-mof-tracker/internal/repository"

	"github.com/google/uuid"
)

// ProgressService is the read-only projection of a MOF and the pick/verify
// state of its items. It never mutates anything.
type ProgressService interface {
	// GetProgress returns nil (no error) when the MOF id is unknown.
	GetProgress(mofID uuid.UUID) (*model.MofProgress, error)
}

type progressService struct {
	store repository.Store
}

func NewProgressService(store repository.Store) ProgressService {
	return &progressService{store: store}
}

func (s *progressService) GetProgress(mofID uuid.UUID) (*model.MofProgress, error) {
	mof, err := s.store.Mofs().FindByID(mofID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := s.store.Items().FindByMof(mofID)
	if err != nil {
		return nil, err
	}

	// Item lists carry no ordering guarantee beyond storage order.
	picked := make([]model.Item, 0, len(items))
	verified := make([]model.Item, 0, len(items))
	for _, item := range items {
		if item.PickedByPicker {
			picked = append(picked, item)
		}
		if item.VerifiedByRequester {
			verified = append(verified, item)
		}
	}

	return &model.MofProgress{
		Mof:               *mof,
		QuantityRequested: mof.QuantityRequested,
		QuantityPicked:    len(picked),
		QuantityVerified:  len(verified),
		ItemsPicked:       picked,
		ItemsVerified:     verified,
	}, nil
}
