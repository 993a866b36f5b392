package charts

import (
	"bytes"
	"errors"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/riskops/riskboard/internal/dataset"
)

var ErrNoData = errors.New("no data points to render")

// BucketBar renders the full-table risk bucket distribution as a bar chart.
// Bars keep the order of the input, which the store provides by descending
// frequency.
func (r *Renderer) BucketBar(counts []dataset.BucketCount) ([]byte, error) {
	if len(counts) == 0 {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, chart.Value{Label: c.Bucket, Value: float64(c.Count)})
	}

	ch := chart.BarChart{
		Title:      "Risk Bucket Distribution",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		Width:      r.width,
		Height:     r.height,
		BarWidth:   60,
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
