package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// dataLabelsForGraph feeds the PNG bar chart: one labeled bar per value.
type dataLabelsForGraph struct {
	labels    []string
	values    []float64
	nameGraph string
}

func NewDataLabelsForGraph(labels []string, values []float64, nameGraph string) dataLabelsForGraph {
	return dataLabelsForGraph{
		labels:    labels,
		values:    values,
		nameGraph: nameGraph,
	}
}

func (d dataLabelsForGraph) GetNameGraph() string {
	return d.nameGraph
}

func (d dataLabelsForGraph) getYValues() []float64 {
	return d.values
}

func (d dataLabelsForGraph) findMaxValue() float64 {
	if len(d.values) == 0 {
		return 0
	}
	max := d.values[0]
	for _, v := range d.values {
		if v > max {
			max = v
		}
	}
	return max
}

func (d dataLabelsForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	if len(d.values) == 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if len(d.labels) < 2 {
		x = 10.0
	} else if len(d.labels) < 10 {
		x = 3.0
	}
	const (
		paddingY     = 100
		spacingRatio = 0.2
		aspectRatio  = 9.0 / 16.0
	)
	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(len(d.labels)) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}

func (d dataLabelsForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for i := range d.labels {
		bars = append(bars, chart.Value{
			Value: d.values[i],
			Label: d.labels[i],
			Style: chart.Style{
				FillColor: drawing.ColorRed.WithAlpha(160),
			},
		})
	}
	return bars
}
