package sqlite

import (
	"context"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/settings"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository. The single settings row is
// seeded by the schema, so it always exists.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s settings.Settings
	err := q.QueryRowContext(ctx, `
		SELECT default_entry_time, default_exit_time, lateness_threshold_minutes
		FROM settings WHERE id = 1
	`).Scan(&s.DefaultEntryTime, &s.DefaultExitTime, &s.LatenessThresholdMinutes)
	if err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Update(ctx context.Context, s settings.Settings) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.ExecContext(ctx, `
		UPDATE settings
		SET default_entry_time = ?, default_exit_time = ?, lateness_threshold_minutes = ?
		WHERE id = 1
	`, s.DefaultEntryTime, s.DefaultExitTime, s.LatenessThresholdMinutes)
	return err
}
