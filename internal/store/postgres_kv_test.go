package store_test

import (
	"context"
	"testing"

	"github.com/jthmssse/saisonnales-app-v2/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPostgresKV_Init(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS app_state").
		WillReturnResult(sqlmock.NewResult(0, 0))

	kv := store.NewPostgresKV(db)
	require.NoError(t, kv.Init(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKV_GetHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs("saisonnale:residents").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":1}]`))

	kv := store.NewPostgresKV(db)
	val, err := kv.Get(context.Background(), "saisonnale:residents")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1}]`, val)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKV_GetMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM app_state").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	kv := store.NewPostgresKV(db)
	_, err = kv.Get(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrMiss)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKV_SetUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO app_state").
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(0, 1))

	kv := store.NewPostgresKV(db)
	require.NoError(t, kv.Set(context.Background(), "k", "v", 0))
	require.NoError(t, mock.ExpectationsWereMet())
}
