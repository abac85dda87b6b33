package worker

// Log messages for jobs run by the pool (spin completions, auto spins)
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// DefaultWorkerCount is used when a pool is created with fewer than one worker
const DefaultWorkerCount = 1

// Pool sizes and timings for pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
