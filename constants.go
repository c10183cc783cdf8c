package bfsim

const (
	DEFAULT_LOG_LEVEL         = "info"
	DEFAULT_WORKERS      uint = 4
	DEFAULT_JOURNAL_NAME      = "bfsim.db"
	DEFAULT_RECENT_LIMIT      = 20
)

// Suite case outcomes, as stored with each evaluation.
const (
	Passed   = "pass"
	Failed   = "fail"
	Errored  = "error"
	Canceled = "canceled"
)
