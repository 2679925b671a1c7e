package backup

import "context"

type BackupService interface {
	Export(ctx context.Context) (Snapshot, error)
	// Import replaces every collection and the configuration with the
	// snapshot contents in a single transaction.
	Import(ctx context.Context, snapshot Snapshot) error
}
