package plot

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/aviation_accidents/domain/models"
)

// Interactive HTML charts. Input slices arrive already sorted by the
// analyzer, rendering keeps that order so output is deterministic.

func TopCountriesBar(counts []models.CountryCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top Countries by Aviation Accidents"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "600px"}),
	)

	names := make([]string, 0, len(counts))
	values := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		names = append(names, c.Country)
		values = append(values, opts.BarData{Value: c.Count})
	}
	bar.SetXAxis(names).AddSeries("accidents", values)
	return bar
}

func WorldMap(counts []models.CountryCount) *charts.Map {
	maxCount := 0
	data := make([]opts.MapData, 0, len(counts))
	for _, c := range counts {
		if c.Code == "" {
			// echarts world map only knows the reference set, same as the
			// original dropped countries without an ISO code here.
			continue
		}
		data = append(data, opts.MapData{Name: c.Country, Value: c.Count})
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	worldMap := charts.NewMap()
	worldMap.RegisterMapType("world")
	worldMap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Global Distribution of Aviation Accidents"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "650px"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: 0,
			Max: float32(maxCount),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#fff5f0", "#fb6a4a", "#67000d"},
			},
		}),
	)
	worldMap.AddSeries("accidents", data)
	return worldMap
}

func OperatorTreemap(groups []models.OperatorGroup) *charts.TreeMap {
	children := map[string][]opts.TreeMapNode{}
	totals := map[string]int{}
	order := []string{}
	for _, g := range groups {
		if _, ok := totals[g.Country]; !ok {
			order = append(order, g.Country)
		}
		children[g.Country] = append(children[g.Country], opts.TreeMapNode{Name: g.Operator, Value: g.Count})
		totals[g.Country] += g.Count
	}

	nodes := make([]opts.TreeMapNode, 0, len(order))
	for _, country := range order {
		nodes = append(nodes, opts.TreeMapNode{
			Name:     country,
			Value:    totals[country],
			Children: children[country],
		})
	}

	treemap := charts.NewTreeMap()
	treemap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Aviation Accidents by Country and Operator"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "650px"}),
	)
	treemap.AddSeries("accidents", nodes)
	return treemap
}

func DamageHeatmap(tab *models.CrossTab) *charts.HeatMap {
	damages := make([]string, 0, len(tab.Damages))
	for _, d := range tab.Damages {
		damages = append(damages, string(d))
	}

	maxCount := 0
	data := []opts.HeatMapData{}
	for y, category := range tab.Categories {
		for x, damage := range tab.Damages {
			count := tab.Get(category, damage)
			if count > maxCount {
				maxCount = count
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, count}})
		}
	}

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Accident Categories vs Damage Type"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "600px"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: damages}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: tab.Categories}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: 0,
			Max: float32(maxCount),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#fff5f0", "#fb6a4a", "#67000d"},
			},
		}),
	)
	heatmap.AddSeries("count", data)
	return heatmap
}

// RenderChartsPage writes all charts into a single scrollable HTML page.
func RenderChartsPage(w io.Writer, chs ...components.Charter) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(chs...)
	return page.Render(w)
}
