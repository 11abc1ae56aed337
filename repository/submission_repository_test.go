package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepbot/ingest"
	"stepbot/repository/testutil"
)

func TestSubmissionRepository_FetchEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewSubmissionRepository(testDB.DB)

	rows, err := repo.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSubmissionRepository_ReplaceAllAndFetch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewSubmissionRepository(testDB.DB)
	ctx := context.Background()

	seeded := []ingest.RawRow{
		testutil.NewRawRow(testutil.WithEmail("a@x.com"), testutil.WithSteps("100")),
		testutil.NewRawRow(testutil.WithEmail("b@x.com"), testutil.WithTeam("Bravo"), testutil.WithSteps("250")),
		testutil.NewRawRow(testutil.WithEmail("c@x.com"), testutil.WithSteps("not-a-number")),
	}
	require.NoError(t, repo.ReplaceAll(ctx, seeded))

	rows, err := repo.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Insertion order is preserved; first-submission-wins depends on it.
	assert.Equal(t, "a@x.com", rows[0][ingest.ColumnEmail])
	assert.Equal(t, "b@x.com", rows[1][ingest.ColumnEmail])
	assert.Equal(t, "c@x.com", rows[2][ingest.ColumnEmail])
	assert.Equal(t, "Bravo", rows[1][ingest.ColumnTeam])

	// Raw cells come back untouched, even unparsable ones.
	assert.Equal(t, "not-a-number", rows[2][ingest.ColumnSteps])

	for _, row := range rows {
		for _, column := range ingest.RequiredColumns() {
			assert.Contains(t, row, column)
		}
	}
}

func TestSubmissionRepository_ReplaceAllOverwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDatabase(t)
	repo := NewSubmissionRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []ingest.RawRow{
		testutil.NewRawRow(testutil.WithEmail("old@x.com")),
	}))
	require.NoError(t, repo.ReplaceAll(ctx, []ingest.RawRow{
		testutil.NewRawRow(testutil.WithEmail("new@x.com")),
	}))

	rows, err := repo.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "new@x.com", rows[0][ingest.ColumnEmail])
}
