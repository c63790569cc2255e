package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UsesUTCTimestamps(t *testing.T) {
	db := newTestDB(t)
	now := db.NowFunc()
	assert.Equal(t, time.UTC, now.Location())
	assert.True(t, db.Config.TranslateError)
	assert.True(t, db.Config.SkipDefaultTransaction)
}

func TestDatabase_PingAndClose(t *testing.T) {
	gdb, mock, _ := newMockPostgres(t)
	d := &Database{DB: gdb}

	require.NoError(t, d.Ping(context.Background()))

	mock.ExpectClose()
	require.NoError(t, d.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_PingFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	mock.ExpectPing()
	gdb, err := Open(postgresOver(mockDB), nil)
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(assert.AnError)
	assert.ErrorIs(t, (&Database{DB: gdb}).Ping(context.Background()), assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
