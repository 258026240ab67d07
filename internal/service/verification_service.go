package service

import (
	"errors"
	"time"

	"go-mof-tracker/internal/metrics"
	"go-mof-tracker/internal/model"
	"go-mof-tracker/internal/repository"
	"go-mof-tracker/internal/ws"

	"github.com/google/uuid"
)

// VerificationService applies a requester's verification of a previously
// picked item.
type VerificationService interface {
	VerifyItem(mofSerial, itemSerial string, verifiedBy uuid.UUID) (*model.Item, error)
}

type verificationService struct {
	store repository.Store
	locks *SerialLocks
	wsHub *ws.Hub
}

func NewVerificationService(store repository.Store, locks *SerialLocks, hub *ws.Hub) VerificationService {
	return &verificationService{
		store: store,
		locks: locks,
		wsHub: hub,
	}
}

// VerifyItem validates the verification preconditions in order (MOF exists,
// item exists, item belongs to this MOF, item was picked, item not yet
// verified), then marks the item verified, appends a VerificationRecord and
// recomputes the MOF status in one atomic unit. Completion tolerates more
// verified items than requested: the threshold is >=, not ==.
func (s *verificationService) VerifyItem(mofSerial, itemSerial string, verifiedBy uuid.UUID) (*model.Item, error) {
	// Same lock order as the scan engine: MOF serial first, then item.
	unlock := s.locks.Lock("mof:"+mofSerial, "item:"+itemSerial)
	defer unlock()

	var (
		verifiedItem *model.Item
		verifyMof    *model.Mof
		oldStatus    model.MofStatus
	)

	err := s.store.Atomic(func(tx repository.Store) error {
		mof, err := tx.Mofs().FindBySerialForUpdate(mofSerial)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMofNotFound
		}
		if err != nil {
			return err
		}

		item, err := tx.Items().FindBySerialForUpdate(itemSerial)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		if err != nil {
			return err
		}

		// An unpicked item carries no MOF reference, so the ownership check
		// only fires for items bound to a different MOF; an unbound item
		// falls through to the not-yet-picked failure.
		if item.MofID != nil && *item.MofID != mof.ID {
			return ErrItemNotInMof
		}
		if !item.PickedByPicker {
			return ErrItemNotPicked
		}
		if item.VerifiedByRequester {
			return ErrItemAlreadyVerified
		}

		now := time.Now()
		item.VerifiedByRequester = true
		item.VerifiedAt = &now
		if err := tx.Items().Save(item); err != nil {
			return err
		}

		rec := &model.VerificationRecord{
			MofID:        mof.ID,
			ItemID:       item.ID,
			VerifiedByID: verifiedBy,
			VerifiedAt:   now,
		}
		if err := tx.VerificationRecords().Create(rec); err != nil {
			return err
		}

		picked, err := tx.Items().CountPicked(mof.ID)
		if err != nil {
			return err
		}
		verified, err := tx.Items().CountVerified(mof.ID)
		if err != nil {
			return err
		}

		oldStatus = mof.Status
		newStatus := ResolveStatus(mof.Status, int(picked), int(verified), mof.QuantityRequested)
		if newStatus != mof.Status {
			mof.Status = newStatus
			if err := tx.Mofs().Save(mof); err != nil {
				return err
			}
		}

		verifiedItem = item
		verifyMof = mof
		return nil
	})

	if err != nil {
		metrics.VerificationsTotal.WithLabelValues(verifyResultLabel(err)).Inc()
		return nil, err
	}
	metrics.VerificationsTotal.WithLabelValues(metrics.ResultOK).Inc()
	if oldStatus != model.MofStatusCompleted && verifyMof.Status == model.MofStatusCompleted {
		metrics.MofsCompletedTotal.Inc()
	}

	s.wsHub.Publish(map[string]interface{}{
		"type":   "mof_update",
		"action": "item_verified",
		"mof": map[string]interface{}{
			"id":            verifyMof.ID,
			"serial_number": verifyMof.SerialNumber,
			"old_status":    oldStatus,
			"status":        verifyMof.Status,
		},
		"item": map[string]interface{}{
			"id":            verifiedItem.ID,
			"serial_number": verifiedItem.SerialNumber,
			"part_number":   verifiedItem.PartNumber,
		},
		"verified_by": verifiedBy,
	})

	return verifiedItem, nil
}

func verifyResultLabel(err error) string {
	switch {
	case errors.Is(err, ErrMofNotFound), errors.Is(err, ErrItemNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrItemNotInMof):
		return metrics.ResultOwnership
	case errors.Is(err, ErrItemNotPicked):
		return metrics.ResultNotPicked
	case errors.Is(err, ErrItemAlreadyVerified):
		return metrics.ResultAlreadyProcessed
	default:
		return "error"
	}
}
