package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/store"
	"github.com/abdidvp/polaxis/internal/domain"
)

func openSQLite(t *testing.T) *store.SQLStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "results.db")
	s, err := store.OpenSQL(context.Background(), domain.StoreSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(id, code string, at time.Time) *domain.ResultRecord {
	return &domain.ResultRecord{
		ID:           id,
		RespondentID: "alice",
		BankVersion:  "2026.1",
		Code:         code,
		Name:         "Nationalist Patriarch",
		Classification: domain.Classification{
			Code:          code,
			Name:          "Nationalist Patriarch",
			QuestionCount: 20,
			AnsweredCount: 18,
			Axes: []domain.AxisResult{
				{AxisName: "Economic", LeftPercent: 18.18, RightPercent: 81.82, RawNormalized: -80, Letter: "F"},
			},
		},
		Answers:   domain.Answers{"econ-1": 2, "gov-1": -1},
		CreatedAt: at,
	}
}

func TestSQLStore_SaveAndGet(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, record("r1", "FACRN", at)))

	got, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.RespondentID)
	assert.Equal(t, "2026.1", got.BankVersion)
	assert.Equal(t, "FACRN", got.Code)
	assert.Equal(t, 2, got.Answers["econ-1"])
	assert.Equal(t, -80.0, got.Classification.Axes[0].RawNormalized)
	assert.True(t, got.CreatedAt.Equal(at))
}

func TestSQLStore_GetMissing(t *testing.T) {
	s := openSQLite(t)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)
}

func TestSQLStore_DuplicateID(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	at := time.Now().UTC()

	require.NoError(t, s.Save(ctx, record("r1", "FACRN", at)))
	assert.Error(t, s.Save(ctx, record("r1", "ELPSG", at)))
}

func TestSQLStore_ListCodesInInsertOrder(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, record("b", "ELPSG", base.Add(time.Minute))))
	require.NoError(t, s.Save(ctx, record("a", "FACRN", base)))
	require.NoError(t, s.Save(ctx, record("c", "FACRN", base.Add(2*time.Minute))))

	codes, err := s.ListCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"FACRN", "ELPSG", "FACRN"}, codes)
}

func TestSQLStore_ReopenKeepsRows(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "results.db")

	s, err := store.OpenSQL(ctx, domain.StoreSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, record("r1", "FACRN", time.Now().UTC())))
	require.NoError(t, s.Close())

	s, err = store.OpenSQL(ctx, domain.StoreSQLite, dsn)
	require.NoError(t, err)
	defer s.Close()

	codes, err := s.ListCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"FACRN"}, codes)
}

func TestOpenSQL_UnsupportedDriver(t *testing.T) {
	_, err := store.OpenSQL(context.Background(), domain.StoreMongo, "")
	assert.ErrorContains(t, err, "unsupported sql driver")
}

func TestOpen_NoDriver(t *testing.T) {
	s, err := store.Open(context.Background(), domain.StoreConfig{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := domain.StoreConfig{Driver: domain.StoreSQLite, DSN: "file:" + filepath.Join(t.TempDir(), "r.db")}

	s, err := store.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &store.SQLStore{}, s)
}
