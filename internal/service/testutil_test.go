package service

import (
	"testing"

	"go-mof-tracker/internal/model"
	"go-mof-tracker/internal/repository"
)

// testEnv wires the services against the in-memory store the way main wires
// them against Postgres.
type testEnv struct {
	store    *repository.MemoryStore
	users    UserService
	items    ItemService
	mofs     MofService
	scan     ScanService
	verify   VerificationService
	progress ProgressService
	auth     AuthService
	report   ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := repository.NewMemoryStore()
	locks := NewSerialLocks()
	progress := NewProgressService(store)
	return &testEnv{
		store:    store,
		users:    NewUserService(store),
		items:    NewItemService(store),
		mofs:     NewMofService(store, nil),
		scan:     NewScanService(store, locks, nil),
		verify:   NewVerificationService(store, locks, nil),
		progress: progress,
		auth:     NewAuthService(store),
		report:   NewReportService(progress),
	}
}

func (e *testEnv) createUser(t *testing.T, username string, role model.Role) *model.User {
	t.Helper()
	user, err := e.users.CreateUser(&CreateUserRequest{
		Username: username,
		Email:    username + "@warehouse.example",
		Password: "secret123",
		FullName: "Test " + username,
		Role:     string(role),
	})
	if err != nil {
		t.Fatalf("createUser(%s): %v", username, err)
	}
	return user
}

func (e *testEnv) createMof(t *testing.T, creator *model.User, part string, qty int) *model.Mof {
	t.Helper()
	mof, err := e.mofs.CreateMof(&CreateMofRequest{
		PartNumber:        part,
		QuantityRequested: qty,
		RequesterName:     creator.FullName,
		Department:        "Stamping",
		Project:           "Line-2",
		CreatedBy:         creator.ID,
	})
	if err != nil {
		t.Fatalf("createMof(%s): %v", part, err)
	}
	return mof
}

func (e *testEnv) createItem(t *testing.T, serialNumber, part string) *model.Item {
	t.Helper()
	item, err := e.items.CreateItem(&CreateItemRequest{
		SerialNumber: serialNumber,
		PartNumber:   part,
		Supplier:     "PT Test Supplier",
	})
	if err != nil {
		t.Fatalf("createItem(%s): %v", serialNumber, err)
	}
	return item
}

func (e *testEnv) mofStatus(t *testing.T, serialNumber string) model.MofStatus {
	t.Helper()
	mof, err := e.store.Mofs().FindBySerial(serialNumber)
	if err != nil {
		t.Fatalf("mofStatus(%s): %v", serialNumber, err)
	}
	return mof.Status
}

func (e *testEnv) itemBySerial(t *testing.T, serialNumber string) *model.Item {
	t.Helper()
	item, err := e.store.Items().FindBySerial(serialNumber)
	if err != nil {
		t.Fatalf("itemBySerial(%s): %v", serialNumber, err)
	}
	return item
}
