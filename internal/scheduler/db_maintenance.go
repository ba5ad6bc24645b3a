package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clearpath-invest/profiler/internal/database"
)

// DBMaintenanceJob checkpoints the profiles database WAL and verifies
// its integrity. Scheduled nightly; the profile workload is
// insert-heavy and the WAL grows without this.
type DBMaintenanceJob struct {
	log        zerolog.Logger
	profilesDB *database.DB
}

// NewDBMaintenanceJob creates a new DBMaintenanceJob
func NewDBMaintenanceJob(profilesDB *database.DB, log zerolog.Logger) *DBMaintenanceJob {
	return &DBMaintenanceJob{
		log:        log.With().Str("job", "db_maintenance").Logger(),
		profilesDB: profilesDB,
	}
}

// Name returns the job name
func (j *DBMaintenanceJob) Name() string {
	return "db_maintenance"
}

// Run performs the maintenance pass
func (j *DBMaintenanceJob) Run() error {
	if err := j.profilesDB.WALCheckpoint("TRUNCATE"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := j.profilesDB.HealthCheck(ctx); err != nil {
		return err
	}

	if stats, err := j.profilesDB.GetStats(); err == nil {
		j.log.Info().
			Int64("size_bytes", stats.SizeBytes).
			Int64("wal_bytes", stats.WALSizeBytes).
			Msg("Database maintenance completed")
	}

	return nil
}
