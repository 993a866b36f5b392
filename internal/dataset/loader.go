package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Source column names. The header row drives column lookup so ordering in
// the file does not matter.
const (
	colRiskScore          = "risk_score"
	colRiskBucket         = "risk_bucket"
	colGamblingDays       = "gambling_days"
	colGamblingTxnCount   = "gambling_txn_count"
	colGamblingTxnPct     = "gambling_txn_pct"
	colGamblingPctOfSpend = "gambling_pct_of_spend"
	colGamblingSpend      = "gambling_spend"
	colTotalTxnCount      = "total_txn_count"
	colTotalSpend         = "total_spend"
	colRiskReason         = "risk_reason"
)

// requiredColumns must all be present in the header. gambling_txn_count is
// the one optional column: when absent it is derived per record as
// round(gambling_txn_pct * total_txn_count).
var requiredColumns = []string{
	colRiskScore,
	colRiskBucket,
	colGamblingDays,
	colGamblingTxnPct,
	colGamblingPctOfSpend,
	colGamblingSpend,
	colTotalTxnCount,
	colTotalSpend,
	colRiskReason,
}

var (
	ErrEmptyDataset   = errors.New("dataset contains no rows")
	ErrMissingHeader  = errors.New("dataset has no header row")
	ErrMissingColumns = errors.New("dataset is missing required columns")
)

// LoaderConfig controls how the dataset file is read.
type LoaderConfig struct {
	Path string
	// Delimiter for the tabular file; ',' when unset.
	Delimiter rune
	// SpendThreshold backs the "minimum gambling spend" filter toggle.
	// Defaults to 100 when unset.
	SpendThreshold float64
}

// Load reads the merged risk dataset into an immutable Store. Any problem
// with the file is fatal for startup: the caller gets a descriptive error
// and no Store.
func Load(cfg LoaderConfig) (*Store, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %q: %w", cfg.Path, err)
	}
	defer f.Close()

	records, derived, err := parse(f, cfg.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %q: %w", cfg.Path, err)
	}

	threshold := cfg.SpendThreshold
	if threshold == 0 {
		threshold = DefaultSpendThreshold
	}

	return newStore(records, derived, threshold), nil
}

// parse reads the CSV stream and applies the normalization steps in order:
// integer coercion of risk_score, string coercion of risk_bucket, the
// gambling_days -> deposit_days rename (via the header mapping), and the
// gambling_txn_count derivation when the column is absent.
func parse(r io.Reader, delimiter rune) ([]UserRecord, bool, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, false, ErrMissingHeader
	}
	if err != nil {
		return nil, false, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, false, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	_, hasTxnCount := index[colGamblingTxnCount]

	var records []UserRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRow(row, index, hasTxnCount)
		if err != nil {
			return nil, false, fmt.Errorf("line %d: %w", line, err)
		}

		rec.Row = len(records)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, false, ErrEmptyDataset
	}

	return records, !hasTxnCount, nil
}

func parseRow(row []string, index map[string]int, hasTxnCount bool) (UserRecord, error) {
	cell := func(name string) string {
		return strings.TrimSpace(row[index[name]])
	}

	var (
		rec UserRecord
		err error
	)

	if rec.RiskScore, err = parseInt(cell(colRiskScore)); err != nil {
		return rec, fmt.Errorf("column %s: %w", colRiskScore, err)
	}

	rec.RiskBucket = cell(colRiskBucket)
	rec.RiskReason = cell(colRiskReason)

	if rec.DepositDays, err = parseInt(cell(colGamblingDays)); err != nil {
		return rec, fmt.Errorf("column %s: %w", colGamblingDays, err)
	}

	if rec.GamblingTxnPct, err = strconv.ParseFloat(cell(colGamblingTxnPct), 64); err != nil {
		return rec, fmt.Errorf("column %s: %w", colGamblingTxnPct, err)
	}

	if rec.GamblingPctOfSpend, err = strconv.ParseFloat(cell(colGamblingPctOfSpend), 64); err != nil {
		return rec, fmt.Errorf("column %s: %w", colGamblingPctOfSpend, err)
	}

	if rec.GamblingSpend, err = strconv.ParseFloat(cell(colGamblingSpend), 64); err != nil {
		return rec, fmt.Errorf("column %s: %w", colGamblingSpend, err)
	}

	if rec.TotalTxnCount, err = parseInt(cell(colTotalTxnCount)); err != nil {
		return rec, fmt.Errorf("column %s: %w", colTotalTxnCount, err)
	}

	if rec.TotalSpend, err = strconv.ParseFloat(cell(colTotalSpend), 64); err != nil {
		return rec, fmt.Errorf("column %s: %w", colTotalSpend, err)
	}

	if hasTxnCount {
		if rec.GamblingTxnCount, err = parseInt(cell(colGamblingTxnCount)); err != nil {
			return rec, fmt.Errorf("column %s: %w", colGamblingTxnCount, err)
		}
	} else {
		rec.GamblingTxnCount = DeriveGamblingTxnCount(rec.GamblingTxnPct, rec.TotalTxnCount)
	}

	return rec, nil
}

// DeriveGamblingTxnCount is the fallback computation for the optional
// gambling_txn_count column: round(gambling_txn_pct * total_txn_count).
func DeriveGamblingTxnCount(txnPct float64, totalTxnCount int) int {
	return int(math.Round(txnPct * float64(totalTxnCount)))
}

// parseInt accepts plain integers and integral floats ("7" and "7.0" both
// appear in exported datasets; the value is truncated toward zero).
func parseInt(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}

	return int(f), nil
}
