package dataset

// UserRecord is one scored user from the merged gambling dataset. Records
// are built once at load time and never mutated afterwards.
type UserRecord struct {
	// Row is the zero-based position of the record in the source file.
	// It survives filtering, so detail panels can name users stably.
	Row                int
	RiskScore          int
	RiskBucket         string
	DepositDays        int
	GamblingTxnCount   int
	GamblingTxnPct     float64
	GamblingPctOfSpend float64
	GamblingSpend      float64
	TotalTxnCount      int
	TotalSpend         float64
	RiskReason         string
}

// BucketCount is the number of users carrying a given risk bucket label.
type BucketCount struct {
	Bucket string
	Count  int
}
