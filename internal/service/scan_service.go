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

// ScanService applies a picker's scan of one item against one MOF.
type ScanService interface {
	ScanItem(mofSerial, itemSerial string, pickedBy uuid.UUID) (*model.Item, error)
}

type scanService struct {
	store repository.Store
	locks *SerialLocks
	wsHub *ws.Hub
}

func NewScanService(store repository.Store, locks *SerialLocks, hub *ws.Hub) ScanService {
	return &scanService{
		store: store,
		locks: locks,
		wsHub: hub,
	}
}

// ScanItem validates the scan preconditions in order (MOF exists, item
// exists, part numbers match, item not yet picked), then marks the item
// picked, appends a PickRecord and recomputes the MOF status, all in one
// atomic unit. The per-serial locks serialize concurrent scans of the same
// item and concurrent status recomputes of the same MOF.
func (s *scanService) ScanItem(mofSerial, itemSerial string, pickedBy uuid.UUID) (*model.Item, error) {
	// MOF lock always before item lock, same as the verification engine.
	unlock := s.locks.Lock("mof:"+mofSerial, "item:"+itemSerial)
	defer unlock()

	var (
		scanned   *model.Item
		scanMof   *model.Mof
		oldStatus model.MofStatus
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

		if item.PartNumber != mof.PartNumber {
			return ErrPartNumberMismatch
		}
		if item.PickedByPicker {
			return ErrItemAlreadyPicked
		}

		// Mutate item: bind to MOF and mark picked.
		now := time.Now()
		item.PickedByPicker = true
		item.MofID = &mof.ID
		item.PickedAt = &now
		if err := tx.Items().Save(item); err != nil {
			return err
		}

		rec := &model.PickRecord{
			MofID:      mof.ID,
			ItemID:     item.ID,
			PickedByID: pickedBy,
			PickedAt:   now,
		}
		if err := tx.PickRecords().Create(rec); err != nil {
			return err
		}

		// Recompute MOF status from the aggregate counts.
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

		scanned = item
		scanMof = mof
		return nil
	})

	if err != nil {
		metrics.ScansTotal.WithLabelValues(scanResultLabel(err)).Inc()
		return nil, err
	}
	metrics.ScansTotal.WithLabelValues(metrics.ResultOK).Inc()

	s.wsHub.Publish(map[string]interface{}{
		"type":   "mof_update",
		"action": "item_picked",
		"mof": map[string]interface{}{
			"id":            scanMof.ID,
			"serial_number": scanMof.SerialNumber,
			"old_status":    oldStatus,
			"status":        scanMof.Status,
		},
		"item": map[string]interface{}{
			"id":            scanned.ID,
			"serial_number": scanned.SerialNumber,
			"part_number":   scanned.PartNumber,
		},
		"picked_by": pickedBy,
	})

	return scanned, nil
}

func scanResultLabel(err error) string {
	switch {
	case errors.Is(err, ErrMofNotFound), errors.Is(err, ErrItemNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrPartNumberMismatch):
		return metrics.ResultMismatch
	case errors.Is(err, ErrItemAlreadyPicked):
		return metrics.ResultAlreadyProcessed
	default:
		return "error"
	}
}
