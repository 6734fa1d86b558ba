package ingester

import "time"

const (
	diagnosticsSampleSize = 10

	tableWriteWorkers = 4
	gcLoadWorkers     = 8

	gcDeleteBatchSize     = 1000
	gcDeleteFlushInterval = time.Second
	gcDeleteRPS           = 20
)
