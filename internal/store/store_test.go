package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/afscreen/internal/model"
	"github.com/stretchr/testify/require"
)

func setupStores(t *testing.T) map[string]Store {
	t.Helper()

	stores := make(map[string]Store)

	for _, backend := range []string{"bolt", "sqlite"} {
		s, err := Open(backend, filepath.Join(t.TempDir(), "history"))
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := s.Close(); err != nil {
				t.Logf("failed to close %s store: %v", backend, err)
			}
		})

		stores[backend] = s
	}

	return stores
}

func newRun(created time.Time, jobs int) *model.Run {
	return &model.Run{
		ID:             uuid.New().String(),
		CreatedAt:      created,
		CSVPath:        "/tmp/targets.csv",
		NameColumn:     "name",
		SequenceColumn: "seq",
		Chains:         2,
		Targets:        jobs / 2,
		Jobs:           jobs,
		SkippedRows:    []int{3},
		Destination:    "out/screen.json",
		Files:          []string{"out/screen_1-100.json"},
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	for backend, s := range setupStores(t) {
		t.Run(backend, func(t *testing.T) {
			require.NoError(t, s.Ping())

			run := newRun(time.Now().UTC().Truncate(time.Millisecond), 10)
			require.NoError(t, s.SaveRun(run))

			got, err := s.GetRun(run.ID)
			require.NoError(t, err)
			require.Equal(t, run.ID, got.ID)
			require.True(t, run.CreatedAt.Equal(got.CreatedAt))
			require.Equal(t, run.Jobs, got.Jobs)
			require.Equal(t, run.SkippedRows, got.SkippedRows)
			require.Equal(t, run.Files, got.Files)
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for backend, s := range setupStores(t) {
		t.Run(backend, func(t *testing.T) {
			_, err := s.GetRun("does-not-exist")
			require.ErrorIs(t, err, ErrRunNotFound)
		})
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	for backend, s := range setupStores(t) {
		t.Run(backend, func(t *testing.T) {
			base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

			for i := 0; i < 3; i++ {
				require.NoError(t, s.SaveRun(newRun(base.Add(time.Duration(i)*time.Minute), (i+1)*10)))
			}

			runs, err := s.ListRuns(0)
			require.NoError(t, err)
			require.Len(t, runs, 3)
			require.Equal(t, []int{30, 20, 10}, []int{runs[0].Jobs, runs[1].Jobs, runs[2].Jobs})

			limited, err := s.ListRuns(2)
			require.NoError(t, err)
			require.Len(t, limited, 2)
			require.Equal(t, 30, limited[0].Jobs)
		})
	}
}

func TestStore_SaveReplacesExisting(t *testing.T) {
	for backend, s := range setupStores(t) {
		t.Run(backend, func(t *testing.T) {
			run := newRun(time.Now().UTC(), 4)
			require.NoError(t, s.SaveRun(run))

			run.Jobs = 8
			require.NoError(t, s.SaveRun(run))

			runs, err := s.ListRuns(0)
			require.NoError(t, err)
			require.Len(t, runs, 1)
			require.Equal(t, 8, runs[0].Jobs)
		})
	}
}

func TestStore_SaveInvalid(t *testing.T) {
	for backend, s := range setupStores(t) {
		t.Run(backend, func(t *testing.T) {
			require.Error(t, s.SaveRun(nil))
			require.Error(t, s.SaveRun(&model.Run{}))
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("redis", filepath.Join(t.TempDir(), "history"))
	require.Error(t, err)
}
