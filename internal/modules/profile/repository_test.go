package profile

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/clearpath-invest/profiler/internal/modules/questionnaire"
)

// setupTestDB creates an in-memory SQLite database with the risk_profiles table
func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE risk_profiles (
			id              TEXT PRIMARY KEY,
			user_id         TEXT NOT NULL,
			catalog_version TEXT NOT NULL,
			final_score     REAL NOT NULL,
			category        TEXT NOT NULL,
			result          TEXT NOT NULL,
			created_at      INTEGER NOT NULL
		) STRICT
	`)
	require.NoError(t, err)

	return db
}

// computeTestProfile computes a profile from uniform answers
func computeTestProfile(t *testing.T, capacity, willingness, bias int) *RiskProfileResult {
	catalog := questionnaire.Default()
	result, err := ComputeRiskProfile(catalog, completeAnswers(catalog, capacity, willingness, bias))
	require.NoError(t, err)
	return result
}

func TestRepository_SaveAndGetLatest(t *testing.T) {
	repo := NewRepository(setupTestDB(t), zerolog.Nop())
	result := computeTestProfile(t, 3, 3, 2)

	stored, err := repo.Save("user-1", result)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, questionnaire.Version, stored.CatalogVersion)

	loaded, err := repo.GetLatest("user-1", questionnaire.Version)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, loaded.ID)
	assert.Equal(t, result, loaded.Result, "round-tripped result must be identical")
}

func TestRepository_GetLatest_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t), zerolog.Nop())

	_, err := repo.GetLatest("nobody", questionnaire.Version)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRepository_RetakeReplacesProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db, zerolog.Nop())

	first, err := repo.Save("user-1", computeTestProfile(t, 2, 2, 1))
	require.NoError(t, err)

	// Simulate a later retake with different answers
	second := computeTestProfile(t, 5, 5, 1)
	_, err = db.Exec("UPDATE risk_profiles SET created_at = created_at - 60 WHERE id = ?", first.ID)
	require.NoError(t, err)
	storedSecond, err := repo.Save("user-1", second)
	require.NoError(t, err)

	latest, err := repo.GetLatest("user-1", questionnaire.Version)
	require.NoError(t, err)
	assert.Equal(t, storedSecond.ID, latest.ID)
	assert.Equal(t, 5.00, latest.Result.FinalScore)
}

func TestRepository_HasCompleted(t *testing.T) {
	repo := NewRepository(setupTestDB(t), zerolog.Nop())

	completed, err := repo.HasCompleted("user-1", questionnaire.Version)
	require.NoError(t, err)
	assert.False(t, completed)

	_, err = repo.Save("user-1", computeTestProfile(t, 3, 3, 3))
	require.NoError(t, err)

	completed, err = repo.HasCompleted("user-1", questionnaire.Version)
	require.NoError(t, err)
	assert.True(t, completed)

	// A different catalog version does not count as completed
	completed, err = repo.HasCompleted("user-1", "1999.9")
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestRepository_ComputeAggregateStats_SameSecondRetake(t *testing.T) {
	repo := NewRepository(setupTestDB(t), zerolog.Nop())

	// Back-to-back saves land in the same Unix second; the user must
	// still count exactly once.
	_, err := repo.Save("user-1", computeTestProfile(t, 2, 2, 1))
	require.NoError(t, err)
	_, err = repo.Save("user-1", computeTestProfile(t, 5, 5, 1))
	require.NoError(t, err)

	stats, err := repo.ComputeAggregateStats(questionnaire.Version)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count, "one user must count once in aggregate stats")

	total := 0
	for _, n := range stats.CategoryCount {
		total += n
	}
	assert.Equal(t, 1, total)

	// Stats must be computed over the same row GetLatest serves
	latest, err := repo.GetLatest("user-1", questionnaire.Version)
	require.NoError(t, err)
	assert.Equal(t, latest.Result.FinalScore, stats.MeanScore)
}

func TestRepository_ComputeAggregateStats(t *testing.T) {
	repo := NewRepository(setupTestDB(t), zerolog.Nop())

	// Empty database: zero count, no error
	stats, err := repo.ComputeAggregateStats(questionnaire.Version)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count)

	_, err = repo.Save("user-1", computeTestProfile(t, 3, 3, 1)) // final 3.00, moderate
	require.NoError(t, err)
	_, err = repo.Save("user-2", computeTestProfile(t, 5, 5, 1)) // final 5.00, aggressive
	require.NoError(t, err)
	_, err = repo.Save("user-3", computeTestProfile(t, 1, 1, 1)) // final 1.00, conservative
	require.NoError(t, err)

	stats, err = repo.ComputeAggregateStats(questionnaire.Version)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 3.00, stats.MeanScore)
	assert.Equal(t, 3.00, stats.MedianScore)
	assert.Greater(t, stats.StdDevScore, 0.0)
	assert.Equal(t, 1, stats.CategoryCount["moderate"])
	assert.Equal(t, 1, stats.CategoryCount["aggressive"])
	assert.Equal(t, 1, stats.CategoryCount["conservative"])
}
