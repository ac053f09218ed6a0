package syncer

import "time"

const (
	defaultMinPollDelay = 10 * time.Second
	defaultMaxPollDelay = 20 * time.Second
	defaultFetchWorkers = 8

	errorLogFlushSize     = 100
	errorLogFlushInterval = 5 * time.Second
)
