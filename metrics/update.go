package metrics

import "sync/atomic"

type SyncMetrics struct {
	ProcessedCount atomic.Int32
	SubmittedCount atomic.Int32
	ErroredItems   atomic.Int32
}
