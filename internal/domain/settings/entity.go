package settings

// Settings is the process-wide persisted configuration. Defaults are seeded
// by the schema (08:00, 17:00, 15 minutes) and editable by admins.
type Settings struct {
	DefaultEntryTime         string `json:"default_entry_time"`  // "HH:MM"
	DefaultExitTime          string `json:"default_exit_time"`   // "HH:MM"
	LatenessThresholdMinutes int    `json:"lateness_threshold_minutes"`
}
