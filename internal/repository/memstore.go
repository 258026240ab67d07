package repository

import (
	"strings"
	"sync"
	"time"

	"go-mof-tracker/internal/model"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used by the service tests in place of
// Postgres. One mutex guards the whole store; Atomic holds it for the length
// of the callback, which gives the same serialization the GORM store gets
// from its transaction plus row locks. There is no rollback: the engines
// validate before they mutate, so a failed operation has written nothing.
type MemoryStore struct {
	mu     sync.Mutex
	users  []*model.User
	mofs   []*model.Mof
	items  []*model.Item
	picks  []*model.PickRecord
	verifs []*model.VerificationRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Users() UserRepository { return &memUserRepo{s: s} }

func (s *MemoryStore) Mofs() MofRepository { return &memMofRepo{s: s} }

func (s *MemoryStore) Items() ItemRepository { return &memItemRepo{s: s} }

func (s *MemoryStore) PickRecords() PickRecordRepository { return &memPickRepo{s: s} }

func (s *MemoryStore) VerificationRecords() VerificationRecordRepository {
	return &memVerifRepo{s: s}
}

func (s *MemoryStore) Atomic(fn func(Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&lockedMemStore{s: s})
}

// lockedMemStore is the view handed to Atomic callbacks; its repositories
// skip locking because the caller already holds the store mutex.
type lockedMemStore struct {
	s *MemoryStore
}

func (v *lockedMemStore) Users() UserRepository { return &memUserRepo{s: v.s, locked: true} }

func (v *lockedMemStore) Mofs() MofRepository { return &memMofRepo{s: v.s, locked: true} }

func (v *lockedMemStore) Items() ItemRepository { return &memItemRepo{s: v.s, locked: true} }

func (v *lockedMemStore) PickRecords() PickRecordRepository {
	return &memPickRepo{s: v.s, locked: true}
}

func (v *lockedMemStore) VerificationRecords() VerificationRecordRepository {
	return &memVerifRepo{s: v.s, locked: true}
}

func (v *lockedMemStore) Atomic(fn func(Store) error) error {
	// Already inside the store lock; nesting just runs the callback.
	return fn(v)
}

func stamp(base *model.BaseModel) {
	now := time.Now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	base.CreatedAt = now
	base.UpdatedAt = now
}

type memUserRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memUserRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memUserRepo) Create(user *model.User) error {
	defer r.lock()()
	stamp(&user.BaseModel)
	cp := *user
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *memUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	defer r.lock()()
	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memUserRepo) FindByUsername(username string) (*model.User, error) {
	defer r.lock()()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memUserRepo) FindByEmail(email string) (*model.User, error) {
	defer r.lock()()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memUserRepo) FindAll() ([]model.User, error) {
	defer r.lock()()
	out := make([]model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, *u)
	}
	return out, nil
}

type memMofRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memMofRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memMofRepo) Create(mof *model.Mof) error {
	defer r.lock()()
	stamp(&mof.BaseModel)
	cp := *mof
	r.s.mofs = append(r.s.mofs, &cp)
	return nil
}

func (r *memMofRepo) FindByID(id uuid.UUID) (*model.Mof, error) {
	defer r.lock()()
	for _, m := range r.s.mofs {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memMofRepo) FindBySerial(serial string) (*model.Mof, error) {
	defer r.lock()()
	return r.findBySerial(serial)
}

func (r *memMofRepo) FindBySerialForUpdate(serial string) (*model.Mof, error) {
	defer r.lock()()
	return r.findBySerial(serial)
}

func (r *memMofRepo) findBySerial(serial string) (*model.Mof, error) {
	for _, m := range r.s.mofs {
		if m.SerialNumber == serial {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// FindAll returns MOFs newest-created first, mirroring the GORM ordering.
func (r *memMofRepo) FindAll() ([]model.Mof, error) {
	defer r.lock()()
	out := make([]model.Mof, 0, len(r.s.mofs))
	for i := len(r.s.mofs) - 1; i >= 0; i-- {
		out = append(out, *r.s.mofs[i])
	}
	return out, nil
}

func (r *memMofRepo) FindByCreator(userID uuid.UUID) ([]model.Mof, error) {
	defer r.lock()()
	var out []model.Mof
	for i := len(r.s.mofs) - 1; i >= 0; i-- {
		if r.s.mofs[i].CreatedByID == userID {
			out = append(out, *r.s.mofs[i])
		}
	}
	return out, nil
}

func (r *memMofRepo) Save(mof *model.Mof) error {
	defer r.lock()()
	for i, m := range r.s.mofs {
		if m.ID == mof.ID {
			mof.UpdatedAt = time.Now()
			mof.CreatedAt = m.CreatedAt
			cp := *mof
			r.s.mofs[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

type memItemRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memItemRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memItemRepo) Create(item *model.Item) error {
	defer r.lock()()
	stamp(&item.BaseModel)
	cp := *item
	r.s.items = append(r.s.items, &cp)
	return nil
}

func (r *memItemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	defer r.lock()()
	for _, it := range r.s.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memItemRepo) FindBySerial(serial string) (*model.Item, error) {
	defer r.lock()()
	return r.findBySerial(serial)
}

func (r *memItemRepo) FindBySerialForUpdate(serial string) (*model.Item, error) {
	defer r.lock()()
	return r.findBySerial(serial)
}

func (r *memItemRepo) findBySerial(serial string) (*model.Item, error) {
	for _, it := range r.s.items {
		if it.SerialNumber == serial {
			cp := *it
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memItemRepo) FindAll() ([]model.Item, error) {
	defer r.lock()()
	out := make([]model.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *memItemRepo) FindByMof(mofID uuid.UUID) ([]model.Item, error) {
	defer r.lock()()
	var out []model.Item
	for _, it := range r.s.items {
		if it.MofID != nil && *it.MofID == mofID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *memItemRepo) CountPicked(mofID uuid.UUID) (int64, error) {
	defer r.lock()()
	var count int64
	for _, it := range r.s.items {
		if it.MofID != nil && *it.MofID == mofID && it.PickedByPicker {
			count++
		}
	}
	return count, nil
}

func (r *memItemRepo) CountVerified(mofID uuid.UUID) (int64, error) {
	defer r.lock()()
	var count int64
	for _, it := range r.s.items {
		if it.MofID != nil && *it.MofID == mofID && it.VerifiedByRequester {
			count++
		}
	}
	return count, nil
}

func (r *memItemRepo) Save(item *model.Item) error {
	defer r.lock()()
	for i, it := range r.s.items {
		if it.ID == item.ID {
			item.UpdatedAt = time.Now()
			item.CreatedAt = it.CreatedAt
			cp := *item
			r.s.items[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

type memPickRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memPickRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memPickRepo) Create(rec *model.PickRecord) error {
	defer r.lock()()
	stamp(&rec.BaseModel)
	cp := *rec
	r.s.picks = append(r.s.picks, &cp)
	return nil
}

func (r *memPickRepo) FindByMof(mofID uuid.UUID) ([]model.PickRecord, error) {
	defer r.lock()()
	var out []model.PickRecord
	for _, rec := range r.s.picks {
		if rec.MofID == mofID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type memVerifRepo struct {
	s      *MemoryStore
	locked bool
}

func (r *memVerifRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memVerifRepo) Create(rec *model.VerificationRecord) error {
	defer r.lock()()
	stamp(&rec.BaseModel)
	cp := *rec
	r.s.verifs = append(r.s.verifs, &cp)
	return nil
}

func (r *memVerifRepo) FindByMof(mofID uuid.UUID) ([]model.VerificationRecord, error) {
	defer r.lock()()
	var out []model.VerificationRecord
	for _, rec := range r.s.verifs {
		if rec.MofID == mofID {
			out = append(out, *rec)
		}
	}
	return out, nil
}
