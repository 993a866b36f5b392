package dataset

import "sort"

// DefaultSpendThreshold is the gambling spend cutoff behind the
// "only users with > £100 gambling spend" toggle.
const DefaultSpendThreshold = 100

// Store holds the full dataset for the lifetime of the process. The record
// slice and the full-table aggregates are computed once at construction and
// are safe for concurrent reads.
type Store struct {
	records        []UserRecord
	buckets        []string
	counts         []BucketCount
	derived        bool
	spendThreshold float64
}

func newStore(records []UserRecord, derived bool, spendThreshold float64) *Store {
	byBucket := make(map[string]int)
	for _, rec := range records {
		byBucket[rec.RiskBucket]++
	}

	buckets := make([]string, 0, len(byBucket))
	for bucket := range byBucket {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	counts := make([]BucketCount, 0, len(byBucket))
	for _, bucket := range buckets {
		counts = append(counts, BucketCount{Bucket: bucket, Count: byBucket[bucket]})
	}
	// Descending by frequency; the lexicographic pre-sort keeps ties stable.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return &Store{
		records:        records,
		buckets:        buckets,
		counts:         counts,
		derived:        derived,
		spendThreshold: spendThreshold,
	}
}

// Records returns the full, unfiltered table.
func (s *Store) Records() []UserRecord {
	return s.records
}

// Len is the total number of users in the table.
func (s *Store) Len() int {
	return len(s.records)
}

// Buckets returns the distinct risk bucket labels, sorted lexicographically.
func (s *Store) Buckets() []string {
	return s.buckets
}

// BucketCounts returns the per-bucket user counts over the full table,
// ordered by descending frequency.
func (s *Store) BucketCounts() []BucketCount {
	return s.counts
}

// DerivedTxnCount reports whether gambling_txn_count was absent from the
// source file and derived at load time.
func (s *Store) DerivedTxnCount() bool {
	return s.derived
}

// SpendThreshold is the configured gambling spend cutoff for the minimum
// spend filter.
func (s *Store) SpendThreshold() float64 {
	return s.spendThreshold
}

// Filter returns the rows whose risk bucket equals the selection. When
// minSpend is set the result is further restricted to rows with gambling
// spend above the threshold. An empty result is valid; an unknown bucket
// simply matches nothing.
func (s *Store) Filter(bucket string, minSpend bool) []UserRecord {
	var out []UserRecord
	for _, rec := range s.records {
		if rec.RiskBucket != bucket {
			continue
		}
		if minSpend && rec.GamblingSpend <= s.spendThreshold {
			continue
		}
		out = append(out, rec)
	}
	return out
}
