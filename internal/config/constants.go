package config

import "time"

// Defaults
const (
	DefaultPort                  = 8080
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultEnvironment           = "dev"
	DefaultServiceName           = "job-hunter"
	DefaultVersion               = "dev"
	DefaultDBPath                = "data/jobhunter.db"
	DefaultTasksFile             = "configs/daily_tasks.yaml"
	DefaultDailyResetHour        = 0
	DefaultTimezone              = "Local"
	DefaultFollowUpCheckInterval = 15 * time.Minute
	DefaultWorkerCount           = 2
	DefaultShutdownTimeout       = 10 * time.Second
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"
