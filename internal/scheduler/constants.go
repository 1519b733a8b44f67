package scheduler

// LogMsgTickSkipped is logged when a tick could not be queued
const LogMsgTickSkipped = "Scheduled job skipped, pool queue full"
