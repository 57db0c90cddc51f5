package sqlstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

type repos struct {
	db            *gorm.DB
	users         *UserRepository
	employers     *EmployerRepository
	jobs          *JobRepository
	applications  *ApplicationRepository
	notifications *NotificationRepository
	resources     *ResourceRepository
}

func newTestRepos(t *testing.T) *repos {
	t.Helper()
	db, err := Open(Config{Driver: DriverSQLite, DSN: ":memory:", Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })

	return &repos{
		db:            db,
		users:         NewUserRepository(db),
		employers:     NewEmployerRepository(db),
		jobs:          NewJobRepository(db),
		applications:  NewApplicationRepository(db),
		notifications: NewNotificationRepository(db),
		resources:     NewResourceRepository(db),
	}
}

func (r *repos) user(t *testing.T, name string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{Username: name, Email: name + "@example.com", PasswordHash: "x", Role: role}
	require.NoError(t, r.users.Create(context.Background(), u))
	return u
}

// employerWithJob creates an employer account, its company profile and one
// active posting.
func (r *repos) employerWithJob(t *testing.T, name string) (*domain.User, *domain.Employer, *domain.Job) {
	t.Helper()
	ctx := context.Background()
	u := r.user(t, name, domain.RoleEmployer)
	emp := &domain.Employer{UserID: u.ID, CompanyName: name + " Inc"}
	require.NoError(t, r.employers.Create(ctx, emp))
	job := &domain.Job{
		EmployerID:  emp.ID,
		Title:       "Courier",
		Description: "Deliver parcels",
		JobType:     domain.JobGig,
		DatePosted:  time.Now().UTC(),
		IsActive:    true,
	}
	require.NoError(t, r.jobs.Create(ctx, job))
	return u, emp, job
}

func (r *repos) apply(t *testing.T, jobID, userID int64) *domain.Application {
	t.Helper()
	app := &domain.Application{
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: "hire me",
		Status:      domain.StatusPending,
		DateApplied: time.Now().UTC(),
	}
	require.NoError(t, r.applications.Create(context.Background(), app))
	return app
}

// ----------------------------------------------------------------------------
// Users and employers
// ----------------------------------------------------------------------------

func TestUserRepository_Uniqueness(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	ada := r.user(t, "ada", domain.RoleApplicant)

	err := r.users.Create(ctx, &domain.User{Username: "ada2", Email: "ada@example.com", PasswordHash: "x", Role: domain.RoleApplicant})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	bob := r.user(t, "bob", domain.RoleApplicant)
	bob.Username = "ada"
	assert.ErrorIs(t, r.users.UpdateProfile(ctx, bob), domain.ErrUserExists)

	got, err := r.users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, ada.ID, got.ID)

	_, err = r.users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ListAndCount(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	r.user(t, "a", domain.RoleApplicant)
	r.user(t, "b", domain.RoleApplicant)
	r.user(t, "c", domain.RoleAdmin)

	users, err := r.users.List(ctx, ports.UsersByID)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "a", users[0].Username)

	counts, err := r.users.CountByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.RoleApplicant])
	assert.Equal(t, int64(1), counts[domain.RoleAdmin])
	assert.Zero(t, counts[domain.RoleEmployer])
}

func TestUserRepository_ResumeKey(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	u := r.user(t, "ada", domain.RoleApplicant)

	require.NoError(t, r.users.SetResumeKey(ctx, u.ID, "resume_1.pdf"))
	got, err := r.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "resume_1.pdf", got.ResumeKey)

	require.NoError(t, r.users.SetResumeKey(ctx, u.ID, ""))
	got, err = r.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ResumeKey)

	assert.ErrorIs(t, r.users.SetResumeKey(ctx, 999, "x"), domain.ErrUserNotFound)
}

func TestEmployerRepository_OneProfilePerUser(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	u, emp, _ := r.employerWithJob(t, "acme")

	err := r.employers.Create(ctx, &domain.Employer{UserID: u.ID, CompanyName: "Again"})
	assert.ErrorIs(t, err, domain.ErrEmployerExists)

	err = r.employers.Create(ctx, &domain.Employer{UserID: 999, CompanyName: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	got, err := r.employers.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)

	_, err = r.employers.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrEmployerNotFound)
}

// ----------------------------------------------------------------------------
// Jobs
// ----------------------------------------------------------------------------

func TestJobRepository_ToggleActive(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	owner, _, job := r.employerWithJob(t, "acme")
	other, _, _ := r.employerWithJob(t, "globex")

	active, err := r.jobs.ToggleActive(ctx, job.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = r.jobs.ToggleActive(ctx, job.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	listed, err := r.jobs.List(ctx, ports.JobFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.NotEqual(t, job.ID, listed[0].ID)

	// unscoped toggle, as an admin would
	active, err = r.jobs.ToggleActive(ctx, job.ID, 0)
	require.NoError(t, err)
	assert.True(t, active)

	_, err = r.jobs.ToggleActive(ctx, 999, 0)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobRepository_ListingJoin(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	owner, emp, job := r.employerWithJob(t, "acme")
	applicant := r.user(t, "ada", domain.RoleApplicant)
	r.apply(t, job.ID, applicant.ID)

	got, err := r.jobs.GetListing(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme Inc", got.CompanyName)
	assert.Equal(t, owner.ID, got.EmployerUserID)
	assert.Equal(t, emp.ID, got.EmployerID)
	assert.Equal(t, int64(1), got.ApplicationCount)
	assert.True(t, got.IsActive)

	mine, err := r.jobs.List(ctx, ports.JobFilter{EmployerUserID: owner.ID, WithApplicationCount: true})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].ApplicationCount)

	total, active, err := r.jobs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(1), active)

	_, err = r.jobs.GetListing(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobRepository_CreateRequiresEmployer(t *testing.T) {
	r := newTestRepos(t)
	err := r.jobs.Create(context.Background(), &domain.Job{
		EmployerID:  999,
		Title:       "Ghost",
		Description: "none",
		JobType:     domain.JobGig,
		DatePosted:  time.Now().UTC(),
		IsActive:    true,
	})
	assert.ErrorIs(t, err, domain.ErrEmployerNotFound)
}

// ----------------------------------------------------------------------------
// Applications
// ----------------------------------------------------------------------------

func TestApplicationRepository_OnePerJob(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	_, _, job := r.employerWithJob(t, "acme")
	applicant := r.user(t, "ada", domain.RoleApplicant)
	r.apply(t, job.ID, applicant.ID)

	err := r.applications.Create(ctx, &domain.Application{
		JobID: job.ID, UserID: applicant.ID, CoverLetter: "again", Status: domain.StatusPending, DateApplied: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)

	err = r.applications.Create(ctx, &domain.Application{
		JobID: 999, UserID: applicant.ID, CoverLetter: "x", Status: domain.StatusPending, DateApplied: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	require.NoError(t, r.applications.DeleteByJobAndUser(ctx, job.ID, applicant.ID))
	assert.ErrorIs(t, r.applications.DeleteByJobAndUser(ctx, job.ID, applicant.ID), domain.ErrApplicationNotFound)
}

func TestApplicationRepository_DetailAndFilters(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	owner, _, job := r.employerWithJob(t, "acme")
	other, _, otherJob := r.employerWithJob(t, "globex")
	ada := r.user(t, "ada", domain.RoleApplicant)
	require.NoError(t, r.users.SetResumeKey(ctx, ada.ID, "resume_3.pdf"))

	app := r.apply(t, job.ID, ada.ID)
	r.apply(t, otherJob.ID, ada.ID)

	d, err := r.applications.GetDetail(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Courier", d.JobTitle)
	assert.Equal(t, "acme Inc", d.CompanyName)
	assert.Equal(t, owner.ID, d.EmployerUserID)
	assert.Equal(t, "ada", d.ApplicantUsername)
	assert.Equal(t, "ada@example.com", d.ApplicantEmail)
	assert.Equal(t, "resume_3.pdf", d.ResumeKey)
	assert.Equal(t, domain.StatusPending, d.Status)

	mine, err := r.applications.List(ctx, ports.ApplicationFilter{ApplicantID: ada.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	forOwner, err := r.applications.List(ctx, ports.ApplicationFilter{EmployerUserID: owner.ID})
	require.NoError(t, err)
	require.Len(t, forOwner, 1)
	assert.Equal(t, app.ID, forOwner[0].ID)

	forJob, err := r.applications.List(ctx, ports.ApplicationFilter{EmployerUserID: other.ID, JobID: job.ID})
	require.NoError(t, err)
	assert.Empty(t, forJob)

	linked, err := r.applications.HasAppliedToEmployer(ctx, ada.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, linked)
	stranger := r.user(t, "eve", domain.RoleApplicant)
	linked, err = r.applications.HasAppliedToEmployer(ctx, stranger.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, linked)

	applied, err := r.applications.AppliedJobIDs(ctx, ada.ID)
	require.NoError(t, err)
	assert.Contains(t, applied, job.ID)
	assert.Contains(t, applied, otherJob.ID)

	require.NoError(t, r.applications.UpdateStatus(ctx, app.ID, domain.StatusAccepted))
	assert.ErrorIs(t, r.applications.UpdateStatus(ctx, 999, domain.StatusAccepted), domain.ErrApplicationNotFound)

	counts, err := r.applications.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[domain.StatusAccepted])
	assert.Equal(t, int64(1), counts[domain.StatusPending])

	_, err = r.applications.GetDetail(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

// ----------------------------------------------------------------------------
// Notifications
// ----------------------------------------------------------------------------

func TestNotificationRepository_MarkReadScopedToOwner(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	ada := r.user(t, "ada", domain.RoleApplicant)
	bob := r.user(t, "bob", domain.RoleApplicant)

	n := &domain.Notification{UserID: ada.ID, Message: "hello"}
	require.NoError(t, r.notifications.Create(ctx, n))
	assert.NotZero(t, n.ID)

	assert.ErrorIs(t, r.notifications.MarkRead(ctx, n.ID, bob.ID), domain.ErrNotificationNotFound)
	require.NoError(t, r.notifications.MarkRead(ctx, n.ID, ada.ID))

	list, err := r.notifications.ListByUser(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)

	list, err = r.notifications.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ----------------------------------------------------------------------------
// Resources and likes
// ----------------------------------------------------------------------------

func TestResourceRepository_LikeCounter(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	ada := r.user(t, "ada", domain.RoleApplicant)
	bob := r.user(t, "bob", domain.RoleApplicant)
	res := &domain.FinancialResource{Name: "Credit 101", Website: "https://example.com", ResourceType: domain.ResourceCredit}
	require.NoError(t, r.resources.Create(ctx, res))

	likes, err := r.resources.Like(ctx, res.ID, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	_, err = r.resources.Like(ctx, res.ID, ada.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)

	likes, err = r.resources.Like(ctx, res.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), likes)

	likes, err = r.resources.Unlike(ctx, res.ID, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	_, err = r.resources.Unlike(ctx, res.ID, ada.ID)
	assert.ErrorIs(t, err, domain.ErrNotLiked)

	_, err = r.resources.Like(ctx, 999, ada.ID)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)

	liked, err := r.resources.LikedIDs(ctx, bob.ID)
	require.NoError(t, err)
	assert.Contains(t, liked, res.ID)

	total, err := r.resources.TotalLikes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestResourceRepository_ConcurrentLikes(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	res := &domain.FinancialResource{Name: "Budget 101", Website: "https://b.example", ResourceType: domain.ResourceBudget}
	require.NoError(t, r.resources.Create(ctx, res))

	const n = 8
	users := make([]*domain.User, n)
	for i := range users {
		users[i] = r.user(t, fmt.Sprintf("liker%d", i), domain.RoleApplicant)
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, u := range users {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := r.resources.Like(ctx, res.ID, userID)
			errs <- err
		}(u.ID)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := r.resources.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Likes)

	_, err = r.resources.Unlike(ctx, 999, users[0].ID)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestResourceRepository_CRUD(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	res := &domain.FinancialResource{Name: "Budget", Website: "https://b.example", ResourceType: domain.ResourceBudget}
	require.NoError(t, r.resources.Create(ctx, res))

	res.Name = "Budgeting"
	res.ResourceType = domain.ResourceInvest
	require.NoError(t, r.resources.Update(ctx, res))

	got, err := r.resources.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budgeting", got.Name)

	budget, err := r.resources.ListByType(ctx, domain.ResourceBudget)
	require.NoError(t, err)
	assert.Empty(t, budget)

	counts, err := r.resources.CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[domain.ResourceInvest])

	require.NoError(t, r.resources.Delete(ctx, res.ID))
	assert.ErrorIs(t, r.resources.Delete(ctx, res.ID), domain.ErrResourceNotFound)
	_, err = r.resources.GetByID(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}

// ----------------------------------------------------------------------------
// Cascades
// ----------------------------------------------------------------------------

func TestUserRepository_DeleteCascades(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	owner, _, job := r.employerWithJob(t, "acme")
	ada := r.user(t, "ada", domain.RoleApplicant)
	bob := r.user(t, "bob", domain.RoleApplicant)
	r.apply(t, job.ID, ada.ID)
	require.NoError(t, r.notifications.Create(ctx, &domain.Notification{UserID: ada.ID, Message: "hi"}))

	res := &domain.FinancialResource{Name: "Invest", Website: "https://i.example", ResourceType: domain.ResourceInvest}
	require.NoError(t, r.resources.Create(ctx, res))
	_, err := r.resources.Like(ctx, res.ID, ada.ID)
	require.NoError(t, err)
	_, err = r.resources.Like(ctx, res.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, r.users.Delete(ctx, ada.ID))

	got, err := r.resources.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)

	apps, err := r.applications.List(ctx, ports.ApplicationFilter{JobID: job.ID})
	require.NoError(t, err)
	assert.Empty(t, apps)

	notes, err := r.notifications.ListByUser(ctx, ada.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	// deleting the employer account takes the profile and postings with it
	require.NoError(t, r.users.Delete(ctx, owner.ID))
	_, err = r.employers.GetByUserID(ctx, owner.ID)
	assert.ErrorIs(t, err, domain.ErrEmployerNotFound)
	_, err = r.jobs.GetListing(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	assert.ErrorIs(t, r.users.Delete(ctx, ada.ID), domain.ErrUserNotFound)
}
