package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestDrawPlotBar(t *testing.T) {
	data := NewDataLabelsForGraph(
		[]string{"United States", "Russia", "Canada"},
		[]float64{762, 539, 191},
		"Top Countries by Aviation Accidents",
	)
	png, err := DrawPlotBar(data)
	assert.NoError(t, err)
	assert.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}

func TestCalculateChartDimensions(t *testing.T) {
	data := NewDataLabelsForGraph([]string{"a", "b", "c"}, []float64{1, 2, 3}, "t")
	width, height := data.calculateChartDimensions(100)
	assert.Greater(t, width, 0)
	assert.Greater(t, height, 0)
	assert.Less(t, height, width)

	empty := NewDataLabelsForGraph(nil, nil, "t")
	width, height = empty.calculateChartDimensions(100)
	assert.Equal(t, 0, width)
	assert.Equal(t, 0, height)
}
