package pgstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/prefs"
)

func newStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewWithPool(mock), mock
}

var (
	selectQ = regexp.QuoteMeta(`SELECT value FROM preferences WHERE key=$1`)
	upsertQ = `INSERT INTO preferences \(key, value, updated_at\)`
	deleteQ = regexp.QuoteMeta(`DELETE FROM preferences WHERE key=$1`)
)

func TestStore_Get(t *testing.T) {
	s, mock := newStore(t)
	defer mock.Close()
	ctx := context.Background()

	mock.ExpectQuery(selectQ).
		WithArgs(prefs.KeyLanguage).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("ur"))
	v, ok, err := s.Get(ctx, prefs.KeyLanguage)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ur", v)

	mock.ExpectQuery(selectQ).
		WithArgs(prefs.KeyAccessToken).
		WillReturnError(pgx.ErrNoRows)
	_, ok, err = s.Get(ctx, prefs.KeyAccessToken)
	require.NoError(t, err)
	require.False(t, ok)

	mock.ExpectQuery(selectQ).
		WithArgs(prefs.KeyAccessToken).
		WillReturnError(errors.New("conn reset"))
	_, _, err = s.Get(ctx, prefs.KeyAccessToken)
	require.ErrorIs(t, err, errs.ErrPersistence)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Set(t *testing.T) {
	s, mock := newStore(t)
	defer mock.Close()
	ctx := context.Background()

	mock.ExpectExec(upsertQ).
		WithArgs(prefs.KeyAccessToken, "tok").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, s.Set(ctx, prefs.KeyAccessToken, "tok"))

	mock.ExpectExec(upsertQ).
		WithArgs(prefs.KeyAccessToken, "tok").
		WillReturnError(context.Canceled)
	require.ErrorIs(t, s.Set(ctx, prefs.KeyAccessToken, "tok"), context.Canceled)

	require.ErrorIs(t, s.Set(ctx, prefs.KeyAccessToken, ""), errs.ErrInvalidInput)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Delete(t *testing.T) {
	s, mock := newStore(t)
	defer mock.Close()
	ctx := context.Background()

	mock.ExpectExec(deleteQ).
		WithArgs(prefs.KeyAccessToken).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.NoError(t, s.Delete(ctx, prefs.KeyAccessToken))

	mock.ExpectExec(deleteQ).
		WithArgs(prefs.KeyAccessToken).
		WillReturnError(errors.New("read-only"))
	require.ErrorIs(t, s.Delete(ctx, prefs.KeyAccessToken), errs.ErrPersistence)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_BehindResilient(t *testing.T) {
	s, mock := newStore(t)
	defer mock.Close()
	ctx := context.Background()
	r := prefs.NewResilient(s, nil)

	mock.ExpectExec(upsertQ).
		WithArgs(prefs.KeyLanguage, "ur").
		WillReturnError(errors.New("db down"))
	require.NoError(t, r.Set(ctx, prefs.KeyLanguage, "ur"))
	require.True(t, r.Degraded())
	require.Equal(t, "ur", prefs.Language(ctx, r))

	require.NoError(t, mock.ExpectationsWereMet())
}
