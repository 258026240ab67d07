package service

import (
	"errors"
	"testing"

	"go-mof-tracker/internal/model"
)

func TestVerifyItemLifecycleScenario(t *testing.T) {
	// MOF for 2 of part P1; two matching items are picked then verified.
	env := newTestEnv(t)
	picker := env.createUser(t, "picker", model.RolePicking)
	requester := env.createUser(t, "requester", model.RoleRequester)
	mof := env.createMof(t, requester, "P1", 2)
	env.createItem(t, "I1", "P1")
	env.createItem(t, "I2", "P1")

	if _, err := env.scan.ScanItem(mof.SerialNumber, "I1", picker.ID); err != nil {
		t.Fatalf("scan I1: %v", err)
	}
	if got := env.mofStatus(t, mof.SerialNumber); got != model.MofStatusInProgress {
		t.Errorf("after scan I1 status = %q, want %q", got, model.MofStatusInProgress)
	}

	if _, err := env.scan.ScanItem(mof.SerialNumber, "I2", picker.ID); err != nil {
		t.Fatalf("scan I2: %v", err)
	}
	if got := env.mofStatus(t, mof.SerialNumber); got != model.MofStatusReadySupply {
		t.Errorf("after scan I2 status = %q, want %q", got, model.MofStatusReadySupply)
	}

	item, err := env.verify.VerifyItem(mof.SerialNumber, "I1", requester.ID)
	if err != nil {
		t.Fatalf("verify I1: %v", err)
	}
	if !item.VerifiedByRequester || item.VerifiedAt == nil {
		t.Error("I1 not marked verified")
	}
	if got := env.mofStatus(t, mof.SerialNumber); got != model.MofStatusReadySupply {
		t.Errorf("after verify 1 of 2 status = %q, want %q", got, model.MofStatusReadySupply)
	}

	if _, err := env.verify.VerifyItem(mof.SerialNumber, "I2", requester.ID); err != nil {
		t.Fatalf("verify I2: %v", err)
	}
	if got := env.mofStatus(t, mof.SerialNumber); got != model.MofStatusCompleted {
		t.Errorf("after verify 2 of 2 status = %q, want %q", got, model.MofStatusCompleted)
	}

	records, _ := env.store.VerificationRecords().FindByMof(mof.ID)
	if len(records) != 2 {
		t.Errorf("got %d verification records, want 2", len(records))
	}
}

func TestVerifyItemNotYetPicked(t *testing.T) {
	env := newTestEnv(t)
	requester := env.createUser(t, "requester", model.RoleRequester)
	mof := env.createMof(t, requester, "P1", 1)
	env.createItem(t, "I1", "P1")

	if _, err := env.verify.VerifyItem(mof.SerialNumber, "I1", requester.ID); !errors.Is(err, ErrItemNotPicked) {
		t.Fatalf("err = %v, want ErrItemNotPicked", err)
	}

	if item := env.itemBySerial(t, "I1"); item.VerifiedByRequester || item.VerifiedAt != nil {
		t.Error("unpicked item was mutated by failed verification")
	}
	if records, _ := env.store.VerificationRecords().FindByMof(mof.ID); len(records) != 0 {
		t.Error("failed verification left a record")
	}
}

func TestVerifyItemWrongMof(t *testing.T) {
	env := newTestEnv(t)
	picker := env.createUser(t, "picker", model.RolePicking)
	requester := env.createUser(t, "requester", model.RoleRequester)
	mofA := env.createMof(t, requester, "P1", 1)
	mofB := env.createMof(t, requester, "P1", 1)
	env.createItem(t, "I1", "P1")

	if _, err := env.scan.ScanItem(mofA.SerialNumber, "I1", picker.ID); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if _, err := env.verify.VerifyItem(mofB.SerialNumber, "I1", requester.ID); !errors.Is(err, ErrItemNotInMof) {
		t.Fatalf("err = %v, want ErrItemNotInMof", err)
	}

	item := env.itemBySerial(t, "I1")
	if item.VerifiedByRequester {
		t.Error("item verified under the wrong MOF")
	}
	if item.MofID == nil || *item.MofID != mofA.ID {
		t.Error("item MOF binding changed")
	}
}

func TestVerifyItemDuplicateRejected(t *testing.T) {
	env := newTestEnv(t)
	picker := env.createUser(t, "picker", model.RolePicking)
	requester := env.createUser(t, "requester", model.RoleRequester)
	mof := env.createMof(t, requester, "P1", 2)
	env.createItem(t, "I1", "P1")

	if _, err := env.scan.ScanItem(mof.SerialNumber, "I1", picker.ID); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if _, err := env.verify.VerifyItem(mof.SerialNumber, "I1", requester.ID); err != nil {
		t.Fatalf("first verify: %v", err)
	}

	if _, err := env.verify.VerifyItem(mof.SerialNumber, "I1", requester.ID); !errors.Is(err, ErrItemAlreadyVerified) {
		t.Fatalf("second verify err = %v, want ErrItemAlreadyVerified", err)
	}
	if records, _ := env.store.VerificationRecords().FindByMof(mof.ID); len(records) != 1 {
		t.Errorf("got %d verification records, want 1", len(records))
	}
}

func TestVerifyItemUnknownMofAndItem(t *testing.T) {
	env := newTestEnv(t)
	requester := env.createUser(t, "requester", model.RoleRequester)
	mof := env.createMof(t, requester, "P1", 1)

	if _, err := env.verify.VerifyItem("MOF-NO-SUCH", "I1", requester.ID); !errors.Is(err, ErrMofNotFound) {
		t.Errorf("err = %v, want ErrMofNotFound", err)
	}
	if _, err := env.verify.VerifyItem(mof.SerialNumber, "I-NO-SUCH", requester.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
}

func TestVerifyCompletionThresholdToleratesOverPick(t *testing.T) {
	// Completion compares verified count with >=, so verifying beyond the
	// requested quantity still completes (and stays completed).
	env := newTestEnv(t)
	picker := env.createUser(t, "picker", model.RolePicking)
	requester := env.createUser(t, "requester", model.RoleRequester)
	mof := env.createMof(t, requester, "P1", 1)
	env.createItem(t, "I1", "P1")
	env.createItem(t, "I2", "P1")

	// Nothing rejects picking more items than requested.
	if _, err := env.scan.ScanItem(mof.SerialNumber, "I1", picker.ID); err != nil {
		t.Fatalf("scan I1: %v", err)
	}
	if _, err := env.scan.ScanItem(mof.SerialNumber, "I2", picker.ID); err != nil {
		t.Fatalf("scan I2: %v", err)
	}
	if got := env.mofStatus(t, mof.SerialNumber); got != model.MofStatusReadySupply {
		t.Fatalf("after over-pick status = %q, want %q", got, model.MofStatusReadySupply)
	}

	if _, err := env.verify.VerifyItem(mof.SerialNumber, "I1", requester.ID); err != nil {
		t.Fatalf("verify I1: %v", err)
	}
	if got := env.mofStatus(t, mof.SerialNumber); got != model.MofStatusCompleted {
		t.Errorf("after threshold reached status = %q, want %q", got, model.MofStatusCompleted)
	}

	// Verifying the extra item is still allowed and leaves the MOF completed.
	if _, err := env.verify.VerifyItem(mof.SerialNumber, "I2", requester.ID); err != nil {
		t.Fatalf("verify I2: %v", err)
	}
	if got := env.mofStatus(t, mof.SerialNumber); got != model.MofStatusCompleted {
		t.Errorf("after extra verification status = %q, want %q", got, model.MofStatusCompleted)
	}
}
