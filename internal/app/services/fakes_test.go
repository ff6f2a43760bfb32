package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/db"
	"github.com/medicamp/backend/internal/pkg/apperrors"
)

// fakeCampStore is an in-memory CampStore. Values are stored by copy so
// callers cannot mutate store state through returned pointers.
type fakeCampStore struct {
	mu    sync.Mutex
	camps map[string]models.Camp
}

func newFakeCampStore() *fakeCampStore {
	return &fakeCampStore{camps: map[string]models.Camp{}}
}

func (f *fakeCampStore) Create(ctx context.Context, camp *models.Camp) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if camp.ID == "" {
		camp.ID = uuid.NewString()
	}
	f.camps[camp.ID] = *camp
	return nil
}

func (f *fakeCampStore) GetByID(ctx context.Context, id string) (*models.Camp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	camp, ok := f.camps[id]
	if !ok {
		return nil, apperrors.ErrCampNotFound
	}
	return &camp, nil
}

func (f *fakeCampStore) GetAll(ctx context.Context, sortColumn string, limit int) ([]*models.Camp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Camp, 0, len(f.camps))
	for _, camp := range f.camps {
		c := camp
		out = append(out, &c)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCampStore) GetByOrganizer(ctx context.Context, email string) ([]*models.Camp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Camp
	for _, camp := range f.camps {
		if camp.OrganizerEmail == email {
			c := camp
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeCampStore) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	camp, ok := f.camps[id]
	if !ok {
		return apperrors.ErrCampNotFound
	}
	if name, ok := patch["name"].(string); ok {
		camp.Name = name
	}
	if fees, ok := patch["fees"].(int); ok {
		camp.Fees = fees
	}
	if location, ok := patch["location"].(string); ok {
		camp.Location = location
	}
	f.camps[id] = camp
	return nil
}

func (f *fakeCampStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.camps[id]; !ok {
		return apperrors.ErrCampNotFound
	}
	delete(f.camps, id)
	return nil
}

func (f *fakeCampStore) IncrementParticipants(ctx context.Context, q db.Querier, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	camp, ok := f.camps[id]
	if !ok {
		return apperrors.ErrCampNotFound
	}
	camp.Participants++
	f.camps[id] = camp
	return nil
}

func (f *fakeCampStore) DecrementParticipants(ctx context.Context, q db.Querier, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	camp, ok := f.camps[id]
	if !ok {
		return apperrors.ErrCampNotFound
	}
	if camp.Participants > 0 {
		camp.Participants--
	}
	f.camps[id] = camp
	return nil
}

func (f *fakeCampStore) participants(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.camps[id].Participants
}

func (f *fakeCampStore) snapshot() map[string]models.Camp {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]models.Camp, len(f.camps))
	for id, camp := range f.camps {
		out[id] = camp
	}
	return out
}

func (f *fakeCampStore) restore(s map[string]models.Camp) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.camps = s
}

// fakeRegistrationStore is an in-memory RegistrationStore
type fakeRegistrationStore struct {
	mu   sync.Mutex
	regs map[string]models.Registration
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{regs: map[string]models.Registration{}}
}

func (f *fakeRegistrationStore) Create(ctx context.Context, q db.Querier, reg *models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	f.regs[reg.ID] = *reg
	return nil
}

func (f *fakeRegistrationStore) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.regs[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	return &reg, nil
}

func (f *fakeRegistrationStore) Delete(ctx context.Context, q db.Querier, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.regs[id]; !ok {
		return apperrors.ErrRegistrationNotFound
	}
	delete(f.regs, id)
	return nil
}

func (f *fakeRegistrationStore) GetByParticipant(ctx context.Context, email string) ([]*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Registration
	for _, reg := range f.regs {
		if reg.ParticipantEmail == email {
			r := reg
			out = append(out, &r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationStore) GetByOrganizer(ctx context.Context, email string) ([]*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Registration
	for _, reg := range f.regs {
		if reg.OrganizerEmail == email {
			r := reg
			out = append(out, &r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.regs)
}

func (f *fakeRegistrationStore) snapshot() map[string]models.Registration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]models.Registration, len(f.regs))
	for id, reg := range f.regs {
		out[id] = reg
	}
	return out
}

func (f *fakeRegistrationStore) restore(s map[string]models.Registration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regs = s
}

// fakeTxRunner serializes transactions over the two fake stores and rolls
// both back when the function fails, mirroring the real store's semantics.
type fakeTxRunner struct {
	mu    sync.Mutex
	camps *fakeCampStore
	regs  *fakeRegistrationStore
}

func newFakeTxRunner(camps *fakeCampStore, regs *fakeRegistrationStore) *fakeTxRunner {
	return &fakeTxRunner{camps: camps, regs: regs}
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	campSnap := f.camps.snapshot()
	regSnap := f.regs.snapshot()

	if err := fn(ctx, pgx.Tx(nil)); err != nil {
		f.camps.restore(campSnap)
		f.regs.restore(regSnap)
		return err
	}
	return nil
}

// fakeUserStore is an in-memory UserStore keyed by email
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) GetAll(ctx context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		u := user
		out = append(out, &u)
	}
	return out, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) Upsert(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[user.Email]; ok {
		existing.Name = user.Name
		existing.PhotoURL = user.PhotoURL
		f.users[user.Email] = existing
		return nil
	}
	f.users[user.Email] = *user
	return nil
}
