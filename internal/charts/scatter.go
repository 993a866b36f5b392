package charts

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/riskops/riskboard/internal/dataset"
)

var scatterBlue = drawing.Color{R: 65, G: 105, B: 225, A: 128}

// Correlation renders the gambling transaction share vs gambling spend
// share scatterplot over the full table, with an ordinary least squares
// regression line overlaid. The fit itself comes from the chart library.
func (r *Renderer) Correlation(records []dataset.UserRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	xs := make([]float64, 0, len(records))
	ys := make([]float64, 0, len(records))
	for _, rec := range records {
		xs = append(xs, rec.GamblingTxnPct)
		ys = append(ys, rec.GamblingPctOfSpend)
	}

	scatter := chart.ContinuousSeries{
		Name:    "Users",
		XValues: xs,
		YValues: ys,
		Style:   pointStyle(scatterBlue),
	}

	series := []chart.Series{scatter}
	// A regression line needs at least two points to be meaningful.
	if len(records) >= 2 {
		series = append(series, &chart.LinearRegressionSeries{
			Name:        "OLS fit",
			InnerSeries: scatter,
			Style: chart.Style{
				StrokeColor: chart.ColorRed,
				StrokeWidth: 2.0,
			},
		})
	}

	ch := chart.Chart{
		Title:      "Correlation Between Gambling Transaction % and Spend %",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		Width:      r.width,
		Height:     r.height,
		XAxis:      chart.XAxis{Name: "Gambling Transactions (% of Total Transactions)"},
		YAxis:      chart.YAxis{Name: "Gambling Spend (% of Total Spend)"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
