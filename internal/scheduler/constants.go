package scheduler

// Log messages
const (
	LogMsgTaskScheduled         = "Task scheduled"
	LogMsgTaskRunning           = "Running scheduled task"
	LogMsgTaskCancelled         = "Cancelled pending task"
	LogMsgPoolStopped           = "Worker pool stopped, dropping task"
	LogMsgScheduleAfterShutdown = "Scheduler is shut down, task ignored"
	LogMsgShutdownComplete      = "Scheduler shutdown complete"
	LogMsgShutdownTimeout       = "Scheduler shutdown timeout"
)
