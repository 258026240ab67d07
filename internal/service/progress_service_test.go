package service

import (
	"testing"

	"go-mof-tracker/internal/model"

	"github.com/google/uuid"
)

func TestGetProgressCountsAndLists(t *testing.T) {
	env := newTestEnv(t)
	picker := env.createUser(t, "picker", model.RolePicking)
	requester := env.createUser(t, "requester", model.RoleRequester)
	mof := env.createMof(t, requester, "P1", 3)
	for _, s := range []string{"I1", "I2", "I3"} {
		env.createItem(t, s, "P1")
	}

	// Two picked, one of those verified.
	if _, err := env.scan.ScanItem(mof.SerialNumber, "I1", picker.ID); err != nil {
		t.Fatalf("scan I1: %v", err)
	}
	if _, err := env.scan.ScanItem(mof.SerialNumber, "I2", picker.ID); err != nil {
		t.Fatalf("scan I2: %v", err)
	}
	if _, err := env.verify.VerifyItem(mof.SerialNumber, "I1", requester.ID); err != nil {
		t.Fatalf("verify I1: %v", err)
	}

	prog, err := env.progress.GetProgress(mof.ID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if prog == nil {
		t.Fatal("GetProgress returned nil for existing MOF")
	}

	if prog.QuantityRequested != 3 {
		t.Errorf("QuantityRequested = %d, want 3", prog.QuantityRequested)
	}
	if prog.QuantityPicked != 2 || len(prog.ItemsPicked) != 2 {
		t.Errorf("picked = %d (%d items), want 2", prog.QuantityPicked, len(prog.ItemsPicked))
	}
	if prog.QuantityVerified != 1 || len(prog.ItemsVerified) != 1 {
		t.Errorf("verified = %d (%d items), want 1", prog.QuantityVerified, len(prog.ItemsVerified))
	}
	if prog.ItemsVerified[0].SerialNumber != "I1" {
		t.Errorf("verified item = %q, want I1", prog.ItemsVerified[0].SerialNumber)
	}
	if prog.Mof.ID != mof.ID {
		t.Error("projection carries wrong MOF")
	}
}

func TestGetProgressUnknownMofIsNilNotError(t *testing.T) {
	env := newTestEnv(t)

	prog, err := env.progress.GetProgress(uuid.New())
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if prog != nil {
		t.Error("unknown MOF returned a projection")
	}
}

func TestGetProgressEmptyMof(t *testing.T) {
	env := newTestEnv(t)
	requester := env.createUser(t, "requester", model.RoleRequester)
	mof := env.createMof(t, requester, "P1", 2)

	prog, err := env.progress.GetProgress(mof.ID)
	if err != nil || prog == nil {
		t.Fatalf("GetProgress: %v, %v", prog, err)
	}
	if prog.QuantityPicked != 0 || prog.QuantityVerified != 0 {
		t.Error("fresh MOF reports non-zero progress")
	}
	if len(prog.ItemsPicked) != 0 || len(prog.ItemsVerified) != 0 {
		t.Error("fresh MOF reports items")
	}
}
