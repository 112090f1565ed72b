package tabletimer

import (
	"context"
	"database/sql"
	"testing"
	"time"

	tabletimererrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/tabletimer/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn             func(tx *sql.Tx) Repository
	createFn             func(ctx context.Context, t *Timer) error
	saveFn               func(ctx context.Context, t *Timer) error
	findByIDFn           func(ctx context.Context, id string) (*Timer, error)
	findRunningByTableFn func(ctx context.Context, tableNumber int) (*Timer, error)
	findAllFn            func(ctx context.Context, q ListTimersQuery) ([]Timer, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository               { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, t *Timer) error { return f.createFn(ctx, t) }
func (f *fakeRepo) Save(ctx context.Context, t *Timer) error   { return f.saveFn(ctx, t) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Timer, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindRunningByTable(ctx context.Context, tableNumber int) (*Timer, error) {
	return f.findRunningByTableFn(ctx, tableNumber)
}
func (f *fakeRepo) FindAll(ctx context.Context, q ListTimersQuery) ([]Timer, error) {
	return f.findAllFn(ctx, q)
}

func TestBillableHours(t *testing.T) {
	assert.Equal(t, 1.0, BillableHours(time.Hour))
	assert.Equal(t, 2.5, BillableHours(2*time.Hour+30*time.Minute))
	assert.Equal(t, 0.26, BillableHours(15*time.Minute+30*time.Second))
	assert.Equal(t, 0.0, BillableHours(0))
}

func TestSessionAmount(t *testing.T) {
	rate := decimal.NewFromInt(180)
	assert.True(t, decimal.NewFromInt(450).Equal(SessionAmount(rate, 2.5)))
	assert.True(t, decimal.NewFromFloat(46.80).Equal(SessionAmount(rate, 0.26)))
	assert.True(t, decimal.Zero.Equal(SessionAmount(rate, 0)))
}

func TestService_Start_OneTimerPerTable(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	running := &Timer{ID: uuid.New(), TableNumber: 4, Status: StatusRunning}

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findRunningByTableFn = func(ctx context.Context, n int) (*Timer, error) {
		return running, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Start(context.Background(), StartTimerRequest{
		TableNumber: 4,
		HourlyRate:  decimal.NewFromInt(200),
	}, "")
	assert.ErrorIs(t, err, tabletimererrors.ErrTimerAlreadyRunning)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Start_CreatesRunningTimer(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	startedBy := uuid.New()
	var created Timer

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findRunningByTableFn = func(ctx context.Context, n int) (*Timer, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.createFn = func(ctx context.Context, row *Timer) error { created = *row; return nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Start(context.Background(), StartTimerRequest{
		TableNumber: 7,
		HourlyRate:  decimal.NewFromInt(150),
	}, startedBy.String())
	assert.NoError(t, err)
	assert.Equal(t, StatusRunning, resp.Status)
	assert.Equal(t, 7, created.TableNumber)
	assert.NotNil(t, created.StartedBy)
	assert.Equal(t, startedBy, *created.StartedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Start_RejectsNonPositiveRate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	_, err := svc.Start(context.Background(), StartTimerRequest{
		TableNumber: 1,
		HourlyRate:  decimal.Zero,
	}, "")
	assert.ErrorIs(t, err, tabletimererrors.ErrInvalidRate)
}

func TestService_Stop_BillsSession(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	startedAt := time.Now().Add(-2*time.Hour - 30*time.Minute)
	var saved Timer

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, s string) (*Timer, error) {
		return &Timer{
			ID:          id,
			TableNumber: 2,
			Status:      StatusRunning,
			HourlyRate:  decimal.NewFromInt(180),
			StartedAt:   startedAt,
		}, nil
	}
	repo.saveFn = func(ctx context.Context, row *Timer) error { saved = *row; return nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Stop(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, StatusStopped, saved.Status)
	assert.NotNil(t, saved.EndedAt)
	assert.Equal(t, 2.5, saved.Hours)
	assert.True(t, decimal.NewFromInt(450).Equal(saved.Amount))
	assert.Equal(t, StatusStopped, resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Stop_RequiresRunningTimer(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, s string) (*Timer, error) {
		return &Timer{ID: uuid.New(), Status: StatusStopped}, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Stop(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, tabletimererrors.ErrTimerNotRunning)

	repo.findByIDFn = func(ctx context.Context, s string) (*Timer, error) {
		return nil, gorm.ErrRecordNotFound
	}
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Stop(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, tabletimererrors.ErrTimerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
