package service

import (
	"errors"
	"fmt"
	"time"

	"go-mof-tracker/internal/metrics"
	"go-mof-tracker/internal/model"
	"go-mof-tracker/internal/repository"
	"go-mof-tracker/internal/ws"
	"go-mof-tracker/pkg/serial"
	"go-mof-tracker/pkg/validator"

	"github.com/google/uuid"
)

// MofService covers the MOF side of the lifecycle: creation, the
// administrative status override and the read queries.
type MofService interface {
	CreateMof(req *CreateMofRequest) (*model.Mof, error)
	UpdateStatus(mofID uuid.UUID, status model.MofStatus) (*model.Mof, error)
	GetBySerial(serialNumber string) (*model.Mof, error)
	GetAllMofs() ([]model.Mof, error)
	GetUserMofs(userID uuid.UUID) ([]model.Mof, error)
}

type CreateMofRequest struct {
	PartNumber            string    `json:"part_number" validate:"required"`
	QuantityRequested     int       `json:"quantity_requested" validate:"required,gt=0"`
	ExpectedReceivingDate string    `json:"expected_receiving_date"` // Format: YYYY-MM-DD
	RequesterName         string    `json:"requester_name" validate:"required"`
	Department            string    `json:"department"`
	Project               string    `json:"project"`
	CreatedBy             uuid.UUID `json:"created_by" validate:"uuid_required"`
}

type mofService struct {
	store repository.Store
	wsHub *ws.Hub
}

func NewMofService(store repository.Store, hub *ws.Hub) MofService {
	return &mofService{store: store, wsHub: hub}
}

// CreateMof persists a new MOF in Pending status under a freshly generated
// serial number. The creator must reference an existing user.
func (s *mofService) CreateMof(req *CreateMofRequest) (*model.Mof, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.FormatError(errs[0]))
	}

	if _, err := s.store.Users().FindByID(req.CreatedBy); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var receivingDate time.Time
	if req.ExpectedReceivingDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpectedReceivingDate)
		if err != nil {
			return nil, errors.New("invalid expected_receiving_date format, use YYYY-MM-DD")
		}
		receivingDate = parsed
	}

	mof := &model.Mof{
		SerialNumber:          serial.Generate("MOF"),
		PartNumber:            req.PartNumber,
		QuantityRequested:     req.QuantityRequested,
		ExpectedReceivingDate: receivingDate,
		RequesterName:         req.RequesterName,
		Department:            req.Department,
		Project:               req.Project,
		Status:                model.MofStatusPending,
		CreatedByID:           req.CreatedBy,
	}

	if err := s.store.Mofs().Create(mof); err != nil {
		return nil, err
	}
	metrics.MofsCreatedTotal.Inc()

	s.wsHub.Publish(map[string]interface{}{
		"type":   "mof_update",
		"action": "mof_created",
		"mof": map[string]interface{}{
			"id":                 mof.ID,
			"serial_number":      mof.SerialNumber,
			"part_number":        mof.PartNumber,
			"quantity_requested": mof.QuantityRequested,
			"status":             mof.Status,
		},
		"message": fmt.Sprintf("MOF %s created for part %s (qty %d)", mof.SerialNumber, mof.PartNumber, mof.QuantityRequested),
	})

	return mof, nil
}

// UpdateStatus is the unconditional administrative override. It bypasses the
// monotonicity the engines enforce, so a Completed MOF can be reopened.
func (s *mofService) UpdateStatus(mofID uuid.UUID, status model.MofStatus) (*model.Mof, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var updated *model.Mof
	err := s.store.Atomic(func(tx repository.Store) error {
		mof, err := tx.Mofs().FindByID(mofID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMofNotFound
		}
		if err != nil {
			return err
		}

		mof.Status = status
		if err := tx.Mofs().Save(mof); err != nil {
			return err
		}
		updated = mof
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(map[string]interface{}{
		"type":   "mof_update",
		"action": "status_overridden",
		"mof": map[string]interface{}{
			"id":            updated.ID,
			"serial_number": updated.SerialNumber,
			"status":        updated.Status,
		},
	})

	return updated, nil
}

// GetBySerial returns nil (no error) when the serial is unknown.
func (s *mofService) GetBySerial(serialNumber string) (*model.Mof, error) {
	mof, err := s.store.Mofs().FindBySerial(serialNumber)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mof, nil
}

// GetAllMofs returns every MOF, newest-created first.
func (s *mofService) GetAllMofs() ([]model.Mof, error) {
	return s.store.Mofs().FindAll()
}

// GetUserMofs returns the MOFs created by one user, newest-created first.
func (s *mofService) GetUserMofs(userID uuid.UUID) ([]model.Mof, error) {
	return s.store.Mofs().FindByCreator(userID)
}
