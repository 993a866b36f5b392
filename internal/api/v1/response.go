package v1

import (
	"github.com/riskops/riskboard/internal/service"
)

type MetricResponse struct {
	Value   *float64 `json:"value"`
	Display string   `json:"display"`
}

type BucketCountResponse struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

type OverviewResponse struct {
	TotalUsers      int                   `json:"total_users"`
	Buckets         []string              `json:"buckets"`
	Distribution    []BucketCountResponse `json:"distribution"`
	SpendThreshold  float64               `json:"spend_threshold"`
	DerivedTxnCount bool                  `json:"derived_txn_count"`
}

type SummaryResponse struct {
	Bucket           string         `json:"bucket"`
	MinSpend         bool           `json:"min_spend"`
	Count            int            `json:"count"`
	AvgGamblingSpend MetricResponse `json:"avg_gambling_spend"`
	AvgGamblingTxns  MetricResponse `json:"avg_gambling_txns"`
	AvgRiskScore     MetricResponse `json:"avg_risk_score"`
}

type UserDetailResponse struct {
	User               int     `json:"user"`
	Headline           string  `json:"headline"`
	RiskScore          int     `json:"risk_score"`
	RiskBucket         string  `json:"risk_bucket"`
	RiskReason         string  `json:"risk_reason"`
	TotalTxnCount      int     `json:"total_txn_count"`
	TotalSpend         float64 `json:"total_spend"`
	GamblingSpend      float64 `json:"gambling_spend"`
	GamblingTxnCount   int     `json:"gambling_txn_count"`
	GamblingTxnPct     string  `json:"gambling_txn_pct"`
	GamblingPctOfSpend string  `json:"gambling_pct_of_spend"`
	DepositDays        int     `json:"deposit_days"`
}

type UserDetailsResponse struct {
	Bucket   string               `json:"bucket"`
	MinSpend bool                 `json:"min_spend"`
	Count    int                  `json:"count"`
	Users    []UserDetailResponse `json:"users"`
}

func newMetricResponse(m service.Metric) MetricResponse {
	return MetricResponse{Value: m.Value, Display: m.Display}
}

func newOverviewResponse(result service.OverviewResult) OverviewResponse {
	distribution := make([]BucketCountResponse, 0, len(result.Distribution))
	for _, c := range result.Distribution {
		distribution = append(distribution, BucketCountResponse{Bucket: c.Bucket, Count: c.Count})
	}

	return OverviewResponse{
		TotalUsers:      result.TotalUsers,
		Buckets:         result.Buckets,
		Distribution:    distribution,
		SpendThreshold:  result.SpendThreshold,
		DerivedTxnCount: result.DerivedTxnCount,
	}
}

func newSummaryResponse(result service.SummaryResult) SummaryResponse {
	return SummaryResponse{
		Bucket:           result.Bucket,
		MinSpend:         result.MinSpend,
		Count:            result.Count,
		AvgGamblingSpend: newMetricResponse(result.AvgGamblingSpend),
		AvgGamblingTxns:  newMetricResponse(result.AvgGamblingTxns),
		AvgRiskScore:     newMetricResponse(result.AvgRiskScore),
	}
}

func newUserDetailsResponse(bucket string, minSpend bool, details []service.UserDetail) UserDetailsResponse {
	users := make([]UserDetailResponse, 0, len(details))
	for _, d := range details {
		users = append(users, UserDetailResponse{
			User:               d.User,
			Headline:           d.Headline,
			RiskScore:          d.RiskScore,
			RiskBucket:         d.RiskBucket,
			RiskReason:         d.RiskReason,
			TotalTxnCount:      d.TotalTxnCount,
			TotalSpend:         d.TotalSpend,
			GamblingSpend:      d.GamblingSpend,
			GamblingTxnCount:   d.GamblingTxnCount,
			GamblingTxnPct:     d.GamblingTxnPct,
			GamblingPctOfSpend: d.GamblingPctOfSpend,
			DepositDays:        d.DepositDays,
		})
	}

	return UserDetailsResponse{
		Bucket:   bucket,
		MinSpend: minSpend,
		Count:    len(users),
		Users:    users,
	}
}
