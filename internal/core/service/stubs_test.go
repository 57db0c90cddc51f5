package service

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[int64]*domain.User
	nextID    int64
	createErr error
	deleted   []int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

// seed stores u and returns the assigned id.
func (r *stubUserRepo) seed(u domain.User) int64 {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = &u
	return u.ID
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return domain.ErrUserExists
		}
	}
	u.ID = r.seed(*u)
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, order ports.UserOrder) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if order == ports.UsersNewestFirst {
			return out[i].ID > out[j].ID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, u *domain.User) error {
	for id, existing := range r.users {
		if id != u.ID && (existing.Email == u.Email || existing.Username == u.Username) {
			return domain.ErrUserExists
		}
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) SetResumeKey(_ context.Context, id int64, key string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ResumeKey = key
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubUserRepo) CountByRole(context.Context) (map[domain.Role]int64, error) {
	out := make(map[domain.Role]int64)
	for _, u := range r.users {
		out[u.Role]++
	}
	return out, nil
}

type stubEmployerRepo struct {
	byID   map[int64]*domain.Employer
	nextID int64
}

func newStubEmployerRepo() *stubEmployerRepo {
	return &stubEmployerRepo{byID: make(map[int64]*domain.Employer), nextID: 1}
}

func (r *stubEmployerRepo) Create(_ context.Context, e *domain.Employer) error {
	for _, existing := range r.byID {
		if existing.UserID == e.UserID {
			return domain.ErrEmployerExists
		}
	}
	e.ID = r.nextID
	r.nextID++
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

func (r *stubEmployerRepo) GetByID(_ context.Context, id int64) (*domain.Employer, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEmployerNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployerRepo) GetByUserID(_ context.Context, userID int64) (*domain.Employer, error) {
	for _, e := range r.byID {
		if e.UserID == userID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployerNotFound
}

func (r *stubEmployerRepo) Update(_ context.Context, e *domain.Employer) error {
	if _, ok := r.byID[e.ID]; !ok {
		return domain.ErrEmployerNotFound
	}
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

// stubJobRepo keeps listings directly; employers maps employer_id to the
// owning user so created jobs get a correct EmployerUserID.
type stubJobRepo struct {
	listings  map[int64]*domain.JobListing
	employers *stubEmployerRepo
	nextID    int64
}

func newStubJobRepo(employers *stubEmployerRepo) *stubJobRepo {
	return &stubJobRepo{listings: make(map[int64]*domain.JobListing), employers: employers, nextID: 1}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	j.ID = r.nextID
	r.nextID++
	l := &domain.JobListing{Job: *j}
	if e, ok := r.employers.byID[j.EmployerID]; ok {
		l.CompanyName = e.CompanyName
		l.EmployerUserID = e.UserID
	}
	r.listings[j.ID] = l
	return nil
}

func (r *stubJobRepo) GetListing(_ context.Context, id int64) (*domain.JobListing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context, f ports.JobFilter) ([]domain.JobListing, error) {
	var out []domain.JobListing
	for _, l := range r.listings {
		if f.ActiveOnly && !l.IsActive {
			continue
		}
		if f.EmployerUserID != 0 && l.EmployerUserID != f.EmployerUserID {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubJobRepo) ToggleActive(_ context.Context, id, ownerUserID int64) (bool, error) {
	l, ok := r.listings[id]
	if !ok || (ownerUserID != 0 && l.EmployerUserID != ownerUserID) {
		return false, domain.ErrJobNotFound
	}
	l.IsActive = !l.IsActive
	return l.IsActive, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.listings[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *stubJobRepo) Count(context.Context) (int64, int64, error) {
	var total, active int64
	for _, l := range r.listings {
		total++
		if l.IsActive {
			active++
		}
	}
	return total, active, nil
}

type stubApplicationRepo struct {
	details map[int64]*domain.ApplicationDetail
	jobs    *stubJobRepo
	nextID  int64
}

func newStubApplicationRepo(jobs *stubJobRepo) *stubApplicationRepo {
	return &stubApplicationRepo{details: make(map[int64]*domain.ApplicationDetail), jobs: jobs, nextID: 1}
}

func (r *stubApplicationRepo) Create(_ context.Context, a *domain.Application) error {
	for _, d := range r.details {
		if d.JobID == a.JobID && d.UserID == a.UserID {
			return domain.ErrAlreadyApplied
		}
	}
	a.ID = r.nextID
	r.nextID++
	d := &domain.ApplicationDetail{Application: *a}
	if l, ok := r.jobs.listings[a.JobID]; ok {
		d.JobTitle = l.Title
		d.CompanyName = l.CompanyName
		d.EmployerUserID = l.EmployerUserID
	}
	r.details[a.ID] = d
	return nil
}

func (r *stubApplicationRepo) DeleteByJobAndUser(_ context.Context, jobID, userID int64) error {
	for id, d := range r.details {
		if d.JobID == jobID && d.UserID == userID {
			delete(r.details, id)
			return nil
		}
	}
	return domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) GetDetail(_ context.Context, id int64) (*domain.ApplicationDetail, error) {
	d, ok := r.details[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	d, ok := r.details[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	d.Status = status
	return nil
}

func (r *stubApplicationRepo) List(_ context.Context, f ports.ApplicationFilter) ([]domain.ApplicationDetail, error) {
	var out []domain.ApplicationDetail
	for _, d := range r.details {
		if f.ApplicantID != 0 && d.UserID != f.ApplicantID {
			continue
		}
		if f.EmployerUserID != 0 && d.EmployerUserID != f.EmployerUserID {
			continue
		}
		if f.JobID != 0 && d.JobID != f.JobID {
			continue
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubApplicationRepo) AppliedJobIDs(_ context.Context, userID int64) (map[int64]struct{}, error) {
	out := make(map[int64]struct{})
	for _, d := range r.details {
		if d.UserID == userID {
			out[d.JobID] = struct{}{}
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) HasAppliedToEmployer(_ context.Context, applicantID, employerUserID int64) (bool, error) {
	for _, d := range r.details {
		if d.UserID == applicantID && d.EmployerUserID == employerUserID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubApplicationRepo) CountByStatus(context.Context) (map[domain.ApplicationStatus]int64, error) {
	out := make(map[domain.ApplicationStatus]int64)
	for _, d := range r.details {
		out[d.Status]++
	}
	return out, nil
}

type stubNotificationRepo struct {
	items     []domain.Notification
	createErr error
}

func (r *stubNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	n.ID = int64(len(r.items) + 1)
	r.items = append(r.items, *n)
	return nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID int64) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id, userID int64) error {
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UserID == userID {
			r.items[i].IsRead = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

type stubResourceRepo struct {
	byID   map[int64]*domain.FinancialResource
	likes  map[int64]map[int64]struct{} // resource -> users
	nextID int64
}

func newStubResourceRepo() *stubResourceRepo {
	return &stubResourceRepo{
		byID:   make(map[int64]*domain.FinancialResource),
		likes:  make(map[int64]map[int64]struct{}),
		nextID: 1,
	}
}

func (r *stubResourceRepo) Create(_ context.Context, res *domain.FinancialResource) error {
	res.ID = r.nextID
	r.nextID++
	clone := *res
	r.byID[res.ID] = &clone
	return nil
}

func (r *stubResourceRepo) GetByID(_ context.Context, id int64) (*domain.FinancialResource, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrResourceNotFound
	}
	clone := *res
	return &clone, nil
}

func (r *stubResourceRepo) ListByType(_ context.Context, t domain.ResourceType) ([]domain.FinancialResource, error) {
	var out []domain.FinancialResource
	for _, res := range r.byID {
		if res.ResourceType == t {
			out = append(out, *res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubResourceRepo) Update(_ context.Context, res *domain.FinancialResource) error {
	clone := *res
	r.byID[res.ID] = &clone
	return nil
}

func (r *stubResourceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrResourceNotFound
	}
	delete(r.byID, id)
	delete(r.likes, id)
	return nil
}

func (r *stubResourceRepo) Like(_ context.Context, id, userID int64) (int64, error) {
	users := r.likes[id]
	if users == nil {
		users = make(map[int64]struct{})
		r.likes[id] = users
	}
	if _, ok := users[userID]; ok {
		return 0, domain.ErrAlreadyLiked
	}
	users[userID] = struct{}{}
	r.byID[id].Likes = int64(len(users))
	return r.byID[id].Likes, nil
}

func (r *stubResourceRepo) Unlike(_ context.Context, id, userID int64) (int64, error) {
	users := r.likes[id]
	if _, ok := users[userID]; !ok {
		return 0, domain.ErrNotLiked
	}
	delete(users, userID)
	r.byID[id].Likes = int64(len(users))
	return r.byID[id].Likes, nil
}

func (r *stubResourceRepo) LikedIDs(_ context.Context, userID int64) (map[int64]struct{}, error) {
	out := make(map[int64]struct{})
	for id, users := range r.likes {
		if _, ok := users[userID]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func (r *stubResourceRepo) CountByType(context.Context) (map[domain.ResourceType]int64, error) {
	out := make(map[domain.ResourceType]int64)
	for _, res := range r.byID {
		out[res.ResourceType]++
	}
	return out, nil
}

func (r *stubResourceRepo) TotalLikes(context.Context) (int64, error) {
	var total int64
	for _, res := range r.byID {
		total += res.Likes
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Infrastructure stubs
// ---------------------------------------------------------------------------

type stubFileStore struct {
	objects map[string][]byte
	deleted []string
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{objects: make(map[string][]byte)}
}

func (s *stubFileStore) Save(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *stubFileStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, ports.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *stubFileStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

type stubAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *stubAudit) Record(_ context.Context, e domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *stubAudit) actions() []domain.AuditAction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.AuditAction, len(a.events))
	for i, e := range a.events {
		out[i] = e.Action
	}
	return out
}

type stubRevoker struct {
	revoked map[string]time.Time
	err     error
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Time)}
}

func (r *stubRevoker) Revoke(_ context.Context, id string, until time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.revoked[id] = until
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.revoked[id]
	return ok, nil
}
