package profile

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StoredProfile is a persisted risk profile row.
type StoredProfile struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	CatalogVersion string             `json:"catalog_version"`
	CreatedAt      time.Time          `json:"created_at"`
	Result         *RiskProfileResult `json:"result"`
}

// ErrProfileNotFound indicates no stored profile for the user and
// catalog version.
var ErrProfileNotFound = fmt.Errorf("risk profile not found")

// Repository handles risk profile persistence.
// Database: profiles.db (risk_profiles table)
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new profile repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "profile").Logger(),
	}
}

// Save stores a computed risk profile for a user. Profiles are
// append-only; the latest row per (user, catalog version) is the
// current one.
func (r *Repository) Save(userID string, result *RiskProfileResult) (*StoredProfile, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize risk profile: %w", err)
	}

	stored := &StoredProfile{
		ID:             uuid.New().String(),
		UserID:         userID,
		CatalogVersion: result.CatalogVersion,
		CreatedAt:      time.Now().UTC(),
		Result:         result,
	}

	_, err = r.db.Exec(
		`INSERT INTO risk_profiles (id, user_id, catalog_version, final_score, category, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stored.ID,
		stored.UserID,
		stored.CatalogVersion,
		result.FinalScore,
		result.Category.String(),
		string(payload),
		stored.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert risk profile: %w", err)
	}

	r.log.Info().
		Str("user_id", userID).
		Str("category", result.Category.String()).
		Float64("final_score", result.FinalScore).
		Msg("Risk profile stored")

	return stored, nil
}

// GetLatest returns the most recent profile for a user under the given
// catalog version, or ErrProfileNotFound.
func (r *Repository) GetLatest(userID, catalogVersion string) (*StoredProfile, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, catalog_version, result, created_at
		 FROM risk_profiles
		 WHERE user_id = ? AND catalog_version = ?
		 ORDER BY created_at DESC, id LIMIT 1`,
		userID, catalogVersion,
	)

	var stored StoredProfile
	var payload string
	var createdAtUnix int64

	err := row.Scan(&stored.ID, &stored.UserID, &stored.CatalogVersion, &payload, &createdAtUnix)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan risk profile: %w", err)
	}

	stored.CreatedAt = time.Unix(createdAtUnix, 0).UTC()
	stored.Result = &RiskProfileResult{}
	if err := json.Unmarshal([]byte(payload), stored.Result); err != nil {
		return nil, fmt.Errorf("failed to deserialize risk profile %s: %w", stored.ID, err)
	}

	return &stored, nil
}

// HasCompleted reports whether the user has a stored profile under the
// given catalog version. Downstream personalized-report generation is
// gated on this.
func (r *Repository) HasCompleted(userID, catalogVersion string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM risk_profiles WHERE user_id = ? AND catalog_version = ?",
		userID, catalogVersion,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count risk profiles: %w", err)
	}
	return count > 0, nil
}

// FinalScores returns the final score of the latest profile per user
// under the given catalog version, together with its category. Used for
// aggregate statistics.
func (r *Repository) FinalScores(catalogVersion string) ([]float64, map[string]int, error) {
	// Exactly one row per user, picked with the same ordering GetLatest
	// uses. created_at has one-second resolution, so ties must be broken
	// by id or a same-second retake would count twice.
	rows, err := r.db.Query(
		`SELECT p.final_score, p.category
		 FROM risk_profiles p
		 WHERE p.catalog_version = ?
		   AND p.id = (
			SELECT id FROM risk_profiles
			WHERE user_id = p.user_id AND catalog_version = p.catalog_version
			ORDER BY created_at DESC, id LIMIT 1
		 )`,
		catalogVersion,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query final scores: %w", err)
	}
	defer rows.Close()

	var scores []float64
	categoryCounts := make(map[string]int)
	for rows.Next() {
		var score float64
		var category string
		if err := rows.Scan(&score, &category); err != nil {
			return nil, nil, fmt.Errorf("failed to scan final score: %w", err)
		}
		scores = append(scores, score)
		categoryCounts[category]++
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating final scores: %w", err)
	}

	return scores, categoryCounts, nil
}
