package snapshot_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	"frontdesk/infras/s3"
	s3Mocks "frontdesk/infras/s3/mocks"
	"frontdesk/shared/snapshot"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()

	_, err := store.Load(ctx, "invoices")
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, store.Save(ctx, "invoices", payload))

	payload[0] = 'x'

	loaded, err := store.Load(ctx, "invoices")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(loaded))
}

func newSQLMockStore(t *testing.T) (snapshot.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")

	return snapshot.NewPostgresStore(&postgres.Connection{Read: conn, Write: conn}, "snapshots", mocks.NewOtel()), mock
}

func TestPostgresStoreSave(t *testing.T) {
	store, mock := newSQLMockStore(t)

	mock.ExpectExec(`INSERT INTO "snapshots" \("key", "payload", "updated_at"\) VALUES \(\$1, \$2, \$3\) ON CONFLICT \(key\) DO UPDATE SET`).
		WithArgs("bookings", []byte(`[]`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Save(context.Background(), "bookings", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSaveError(t *testing.T) {
	store, mock := newSQLMockStore(t)

	mock.ExpectExec(`INSERT INTO "snapshots"`).WillReturnError(errors.New("connection reset"))

	err := store.Save(context.Background(), "bookings", []byte(`[]`))
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoad(t *testing.T) {
	store, mock := newSQLMockStore(t)

	mock.ExpectQuery(`SELECT "payload" FROM "snapshots" WHERE \("key" = \$1\)`).
		WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`[{"id":"b1"}]`)))

	data, err := store.Load(context.Background(), "bookings")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b1"}]`, string(data))

	mock.ExpectQuery(`SELECT "payload" FROM "snapshots"`).
		WithArgs("payments").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, err = store.Load(context.Background(), "payments")
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestS3Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := s3Mocks.NewMockS3(ctrl)
	store := snapshot.NewS3Store(client, "ledger", "snapshots", mocks.NewOtel())
	ctx := context.Background()

	client.EXPECT().
		UploadFileBytes(gomock.Any(), "ledger", "snapshots", "invoices.json", "application/json", []byte(`[]`)).
		Return("https://cdn/snapshots/invoices.json", nil)
	require.NoError(t, store.Save(ctx, "invoices", []byte(`[]`)))

	client.EXPECT().
		DownloadFileBytes(gomock.Any(), "ledger", "snapshots", "invoices.json").
		Return([]byte(`[]`), nil)
	data, err := store.Load(ctx, "invoices")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	client.EXPECT().
		DownloadFileBytes(gomock.Any(), "ledger", "snapshots", "payments.json").
		Return(nil, s3.ErrObjectNotFound)
	_, err = store.Load(ctx, "payments")
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	client.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket missing"))
	assert.Error(t, store.Save(ctx, "invoices", []byte(`[]`)))
}

func TestNewSelectsBackend(t *testing.T) {
	cfg := &config.Config{}

	store, err := snapshot.New(cfg, nil, mocks.NewOtel())
	require.NoError(t, err)
	assert.NotNil(t, store)

	cfg.Snapshot.Backend = "tape"
	_, err = snapshot.New(cfg, nil, mocks.NewOtel())
	assert.ErrorIs(t, err, snapshot.ErrUnknownBackend)
}
