package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullHeader = "risk_score,risk_bucket,gambling_days,gambling_txn_count,gambling_txn_pct,gambling_pct_of_spend,gambling_spend,total_txn_count,total_spend,risk_reason\n"

const headerWithoutTxnCount = "risk_score,risk_bucket,gambling_days,gambling_txn_pct,gambling_pct_of_spend,gambling_spend,total_txn_count,total_spend,risk_reason\n"

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "merged_gambling_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ParsesAllColumns(t *testing.T) {
	path := writeDataset(t, fullHeader+
		"82,High,14,23,0.25,0.4,350.50,92,1200.00,frequent high-value gambling deposits\n"+
		"12,Low,1,2,0.02,0.01,15.00,100,2500.00,occasional small stakes\n")

	store, err := Load(LoaderConfig{Path: path})
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	first := store.Records()[0]
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 82, first.RiskScore)
	assert.Equal(t, "High", first.RiskBucket)
	assert.Equal(t, 14, first.DepositDays)
	assert.Equal(t, 23, first.GamblingTxnCount)
	assert.InDelta(t, 0.25, first.GamblingTxnPct, 1e-9)
	assert.InDelta(t, 0.4, first.GamblingPctOfSpend, 1e-9)
	assert.InDelta(t, 350.50, first.GamblingSpend, 1e-9)
	assert.Equal(t, 92, first.TotalTxnCount)
	assert.InDelta(t, 1200.00, first.TotalSpend, 1e-9)
	assert.Equal(t, "frequent high-value gambling deposits", first.RiskReason)

	assert.False(t, store.DerivedTxnCount())
}

func TestLoad_DerivesGamblingTxnCountWhenColumnAbsent(t *testing.T) {
	path := writeDataset(t, headerWithoutTxnCount+
		"82,High,14,0.25,0.4,350.50,92,1200.00,reason one\n"+
		"40,Medium,3,0.10,0.05,120.00,57,900.00,reason two\n")

	store, err := Load(LoaderConfig{Path: path})
	require.NoError(t, err)
	assert.True(t, store.DerivedTxnCount())

	// round(0.25 * 92) = 23, round(0.10 * 57) = 6
	assert.Equal(t, 23, store.Records()[0].GamblingTxnCount)
	assert.Equal(t, 6, store.Records()[1].GamblingTxnCount)

	for _, rec := range store.Records() {
		assert.Equal(t, DeriveGamblingTxnCount(rec.GamblingTxnPct, rec.TotalTxnCount), rec.GamblingTxnCount)
	}
}

func TestLoad_AcceptsIntegralFloatCells(t *testing.T) {
	path := writeDataset(t, fullHeader+
		"82.0,High,14.0,23,0.25,0.4,350.50,92.0,1200.00,exported with float formatting\n")

	store, err := Load(LoaderConfig{Path: path})
	require.NoError(t, err)

	rec := store.Records()[0]
	assert.Equal(t, 82, rec.RiskScore)
	assert.Equal(t, 14, rec.DepositDays)
	assert.Equal(t, 92, rec.TotalTxnCount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(LoaderConfig{Path: filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, err)
}

func TestLoad_MissingRequiredColumns(t *testing.T) {
	path := writeDataset(t, "risk_score,risk_bucket\n82,High\n")

	_, err := Load(LoaderConfig{Path: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), "gambling_days")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeDataset(t, "")

	_, err := Load(LoaderConfig{Path: path})
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeDataset(t, fullHeader)

	_, err := Load(LoaderConfig{Path: path})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestLoad_MalformedNumericCell(t *testing.T) {
	path := writeDataset(t, fullHeader+
		"not-a-score,High,14,23,0.25,0.4,350.50,92,1200.00,reason\n")

	_, err := Load(LoaderConfig{Path: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "risk_score")
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad_SemicolonDelimiter(t *testing.T) {
	content := "risk_score;risk_bucket;gambling_days;gambling_txn_count;gambling_txn_pct;gambling_pct_of_spend;gambling_spend;total_txn_count;total_spend;risk_reason\n" +
		"82;High;14;23;0.25;0.4;350.50;92;1200.00;reason\n"
	path := writeDataset(t, content)

	store, err := Load(LoaderConfig{Path: path, Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
