package config

import (
	"shopwidget.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"sessionsweep": {Schedule: "@every 1m", Job: jobs.SessionSweepJob},
	"cachestats":   {Schedule: "@every 10m", Job: jobs.CacheStatsJob},
	// Add more jobs here
}
