package services

import (
	"context"
	"errors"
	"strconv"

	"eventdesk/internal/domain"
)

// In-memory fakes backing the service tests. Each fake keeps rows in a map
// keyed by ID and assigns IDs sequentially, mirroring the database behavior
// the services rely on.

type fakeUserRepo struct {
	users     map[int64]*domain.User
	nextID    int64
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) add(u *domain.User) *domain.User {
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	} else if u.ID >= f.nextID {
		f.nextID = u.ID + 1
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
		if existing.Username == u.Username {
			return domain.ErrDuplicateUsername
		}
	}
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id int64, patch domain.UserPatch, passwordHash, salt *string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	if salt != nil {
		u.Salt = *salt
	}
	return u, nil
}

type fakeEventRepo struct {
	events    map[int64]*domain.Event
	nextID    int64
	createErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[int64]*domain.Event{}, nextID: 1}
}

func (f *fakeEventRepo) add(e *domain.Event) *domain.Event {
	if e.ID == 0 {
		e.ID = f.nextID
		f.nextID++
	} else if e.ID >= f.nextID {
		f.nextID = e.ID + 1
	}
	f.events[e.ID] = e
	return e
}

func (f *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.add(e)
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) List(_ context.Context, params domain.PaginationParams) ([]*domain.Event, error) {
	var out []*domain.Event
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.events[id]; ok {
			out = append(out, e)
		}
	}
	if params.Offset >= len(out) {
		return nil, nil
	}
	out = out[params.Offset:]
	if params.Limit < len(out) {
		out = out[:params.Limit]
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	return e, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeSpeakerRepo struct {
	speakers map[int64]*domain.Speaker
	nextID   int64
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{speakers: map[int64]*domain.Speaker{}, nextID: 1}
}

func (f *fakeSpeakerRepo) add(s *domain.Speaker) *domain.Speaker {
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	} else if s.ID >= f.nextID {
		f.nextID = s.ID + 1
	}
	f.speakers[s.ID] = s
	return s
}

func (f *fakeSpeakerRepo) Create(_ context.Context, s *domain.Speaker) error {
	f.add(s)
	return nil
}

func (f *fakeSpeakerRepo) GetByID(_ context.Context, id int64) (*domain.Speaker, error) {
	s, ok := f.speakers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSpeakerRepo) List(_ context.Context, _ domain.PaginationParams) ([]*domain.Speaker, error) {
	var out []*domain.Speaker
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.speakers[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[int64]*domain.Session
	nextID   int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[int64]*domain.Session{}, nextID: 1}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *domain.Session) error {
	s.ID = f.nextID
	f.nextID++
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id int64) (*domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) ListByEventID(_ context.Context, eventID int64) ([]*domain.Session, error) {
	var out []*domain.Session
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.sessions[id]; ok && s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeParticipantRepo struct {
	participants map[int64]*domain.Participant
	nextID       int64
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: map[int64]*domain.Participant{}, nextID: 1}
}

func (f *fakeParticipantRepo) Create(_ context.Context, p *domain.Participant) error {
	p.ID = f.nextID
	f.nextID++
	f.participants[p.ID] = p
	return nil
}

func (f *fakeParticipantRepo) ListByEventID(_ context.Context, eventID int64) ([]*domain.Participant, error) {
	var out []*domain.Participant
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.participants[id]; ok && p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBudgetRepo struct {
	items  map[int64]*domain.BudgetItem
	nextID int64
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{items: map[int64]*domain.BudgetItem{}, nextID: 1}
}

func (f *fakeBudgetRepo) Create(_ context.Context, b *domain.BudgetItem) error {
	b.ID = f.nextID
	f.nextID++
	f.items[b.ID] = b
	return nil
}

func (f *fakeBudgetRepo) ListByEventID(_ context.Context, eventID int64) ([]*domain.BudgetItem, error) {
	var out []*domain.BudgetItem
	for id := int64(1); id < f.nextID; id++ {
		if b, ok := f.items[id]; ok && b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeHasher stores passwords reversibly so tests can assert on them.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeTokens struct {
	issueErr error
}

func (f fakeTokens) IssueAccess(userID int64) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "access-" + strconv.FormatInt(userID, 10), nil
}

func (f fakeTokens) IssueRefresh(userID int64) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "refresh-" + strconv.FormatInt(userID, 10), nil
}

func (f fakeTokens) VerifyAccess(token string) (int64, error) {
	return parseFakeToken(token, "access-")
}

func (f fakeTokens) VerifyRefresh(token string) (int64, error) {
	return parseFakeToken(token, "refresh-")
}

func parseFakeToken(token, prefix string) (int64, error) {
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return 0, errors.New("bad token")
	}
	return strconv.ParseInt(token[len(prefix):], 10, 64)
}

type fakeEmailService struct {
	sent []*domain.ParticipantConfirmationData
	err  error
}

func (f *fakeEmailService) SendParticipantConfirmation(_ context.Context, data *domain.ParticipantConfirmationData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
