package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/riskops/riskboard/internal/charts"
	"github.com/riskops/riskboard/internal/constants"
	"github.com/riskops/riskboard/internal/dataset"
	"github.com/riskops/riskboard/internal/export"
	"github.com/riskops/riskboard/internal/metrics"
)

// NoDataPlaceholder is what summary metrics display when the filtered
// subset is empty. An empty subset is a normal result, never an error.
const NoDataPlaceholder = "N/A"

type DashboardService interface {
	Overview(ctx context.Context) (OverviewResult, error)
	Summary(ctx context.Context, query FilterQuery) (SummaryResult, error)
	UserDetails(ctx context.Context, query FilterQuery) ([]UserDetail, error)
	BucketChartPNG(ctx context.Context) ([]byte, error)
	CorrelationChartPNG(ctx context.Context) ([]byte, error)
	CorrelationPDF(ctx context.Context) (PDFExport, error)
}

// FilterQuery is the user's current dashboard selection.
type FilterQuery struct {
	Bucket   string
	MinSpend bool
}

// Metric is a summary statistic with its display form. Value is nil when
// the filtered subset is empty, in which case Display carries the
// placeholder.
type Metric struct {
	Value   *float64
	Display string
}

type OverviewResult struct {
	TotalUsers      int
	Buckets         []string
	Distribution    []dataset.BucketCount
	SpendThreshold  float64
	DerivedTxnCount bool
}

type SummaryResult struct {
	Bucket           string
	MinSpend         bool
	Count            int
	AvgGamblingSpend Metric
	AvgGamblingTxns  Metric
	AvgRiskScore     Metric
}

type UserDetail struct {
	User               int
	Headline           string
	RiskScore          int
	RiskBucket         string
	RiskReason         string
	TotalTxnCount      int
	TotalSpend         float64
	GamblingSpend      float64
	GamblingTxnCount   int
	GamblingTxnPct     string
	GamblingPctOfSpend string
	DepositDays        int
}

type PDFExport struct {
	FileName    string
	ContentType string
	Data        []byte
}

type dashboard struct {
	store    *dataset.Store
	renderer *charts.Renderer
	exporter *export.Exporter
	metrics  *metrics.Metrics
	logger   *zap.Logger
	printer  *message.Printer

	// Full-table figures never change after load, so they render once.
	barOnce sync.Once
	barPNG  []byte
	barErr  error

	corrOnce sync.Once
	corrPNG  []byte
	corrErr  error
}

func NewDashboardService(store *dataset.Store, renderer *charts.Renderer, exporter *export.Exporter,
	metrics *metrics.Metrics, logger *zap.Logger) DashboardService {
	return &dashboard{
		store:    store,
		renderer: renderer,
		exporter: exporter,
		metrics:  metrics,
		logger:   logger,
		printer:  message.NewPrinter(language.BritishEnglish),
	}
}

func (d *dashboard) Overview(ctx context.Context) (OverviewResult, error) {
	return OverviewResult{
		TotalUsers:      d.store.Len(),
		Buckets:         d.store.Buckets(),
		Distribution:    d.store.BucketCounts(),
		SpendThreshold:  d.store.SpendThreshold(),
		DerivedTxnCount: d.store.DerivedTxnCount(),
	}, nil
}

func (d *dashboard) Summary(ctx context.Context, query FilterQuery) (SummaryResult, error) {
	rows := d.store.Filter(query.Bucket, query.MinSpend)

	if d.metrics != nil {
		d.metrics.RecordFilterQuery(query.Bucket, query.MinSpend, len(rows))
	}

	result := SummaryResult{
		Bucket:   query.Bucket,
		MinSpend: query.MinSpend,
		Count:    len(rows),
	}

	if len(rows) == 0 {
		d.logger.Info("Filter matched no users",
			zap.String("bucket", query.Bucket),
			zap.Bool("minSpend", query.MinSpend))

		empty := Metric{Display: NoDataPlaceholder}
		result.AvgGamblingSpend = empty
		result.AvgGamblingTxns = empty
		result.AvgRiskScore = empty
		return result, nil
	}

	var spend, txns, score float64
	for _, rec := range rows {
		spend += rec.GamblingSpend
		txns += float64(rec.GamblingTxnCount)
		score += float64(rec.RiskScore)
	}
	n := float64(len(rows))

	result.AvgGamblingSpend = d.currencyMetric(spend / n)
	result.AvgGamblingTxns = d.numberMetric(txns/n, 1)
	result.AvgRiskScore = d.numberMetric(score/n, 2)

	return result, nil
}

func (d *dashboard) UserDetails(ctx context.Context, query FilterQuery) ([]UserDetail, error) {
	rows := d.store.Filter(query.Bucket, query.MinSpend)

	if d.metrics != nil {
		d.metrics.RecordFilterQuery(query.Bucket, query.MinSpend, len(rows))
	}

	details := make([]UserDetail, 0, len(rows))
	for _, rec := range rows {
		details = append(details, UserDetail{
			User: rec.Row,
			Headline: fmt.Sprintf("User %d — Score: %d | Spend: £%.2f",
				rec.Row, rec.RiskScore, rec.GamblingSpend),
			RiskScore:          rec.RiskScore,
			RiskBucket:         rec.RiskBucket,
			RiskReason:         rec.RiskReason,
			TotalTxnCount:      rec.TotalTxnCount,
			TotalSpend:         rec.TotalSpend,
			GamblingSpend:      rec.GamblingSpend,
			GamblingTxnCount:   rec.GamblingTxnCount,
			GamblingTxnPct:     formatPercent(rec.GamblingTxnPct),
			GamblingPctOfSpend: formatPercent(rec.GamblingPctOfSpend),
			DepositDays:        rec.DepositDays,
		})
	}

	return details, nil
}

func (d *dashboard) BucketChartPNG(ctx context.Context) ([]byte, error) {
	d.barOnce.Do(func() {
		d.barPNG, d.barErr = d.renderer.BucketBar(d.store.BucketCounts())
		if d.metrics != nil {
			d.metrics.RecordChartRender("buckets", d.barErr)
		}
	})

	if d.barErr != nil {
		d.logger.Error("Failed to render bucket chart", zap.Error(d.barErr))
		return nil, NewServiceError(constants.ErrCodeChartRender, d.barErr)
	}

	return d.barPNG, nil
}

func (d *dashboard) CorrelationChartPNG(ctx context.Context) ([]byte, error) {
	d.corrOnce.Do(func() {
		d.corrPNG, d.corrErr = d.renderer.Correlation(d.store.Records())
		if d.metrics != nil {
			d.metrics.RecordChartRender("correlation", d.corrErr)
		}
	})

	if d.corrErr != nil {
		d.logger.Error("Failed to render correlation chart", zap.Error(d.corrErr))
		return nil, NewServiceError(constants.ErrCodeChartRender, d.corrErr)
	}

	return d.corrPNG, nil
}

func (d *dashboard) CorrelationPDF(ctx context.Context) (PDFExport, error) {
	png, err := d.CorrelationChartPNG(ctx)
	if err != nil {
		return PDFExport{}, err
	}

	data, err := d.exporter.ChartPDF(png)
	if d.metrics != nil {
		d.metrics.RecordPDFExport(err)
	}
	if err != nil {
		d.logger.Error("Failed to export correlation chart as PDF", zap.Error(err))
		return PDFExport{}, NewServiceError(constants.ErrCodeExportFailed, err)
	}

	return PDFExport{
		FileName:    export.CorrelationFileName,
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (d *dashboard) currencyMetric(v float64) Metric {
	return Metric{
		Value:   &v,
		Display: d.printer.Sprintf("£%v", number.Decimal(v, number.Scale(2))),
	}
}

func (d *dashboard) numberMetric(v float64, scale int) Metric {
	return Metric{
		Value:   &v,
		Display: d.printer.Sprintf("%v", number.Decimal(v, number.Scale(scale))),
	}
}

func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}
