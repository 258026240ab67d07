package service

import "go-mof-tracker/internal/model"

// ResolveStatus computes the MOF status transition from aggregate item
// counts. It is the single routine shared by the scan and verification
// engines so the two call sites cannot diverge.
//
// Rules:
//   - verified count >= quantity requested  => Completed
//   - picked count >= quantity requested    => MOF siap Supply
//   - any pick while still Pending          => In Progress
//
// The result never ranks below the current status, and Completed is a sink.
func ResolveStatus(current model.MofStatus, pickedCount, verifiedCount, quantityRequested int) model.MofStatus {
	if current == model.MofStatusCompleted {
		return current
	}

	next := current
	switch {
	case verifiedCount >= quantityRequested:
		next = model.MofStatusCompleted
	case pickedCount >= quantityRequested:
		next = model.MofStatusReadySupply
	case pickedCount > 0 && current == model.MofStatusPending:
		next = model.MofStatusInProgress
	}

	if next.Rank() < current.Rank() {
		return current
	}
	return next
}
