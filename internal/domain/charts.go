package domain

// Chart identifies one of the two reference charts the calculator UI renders.
type Chart string

const (
	// DepressionChart plots temperature (°C, 0–40) against dew-point
	// depression (°C, 0–25).
	DepressionChart Chart = "depression"

	// RelativeHumidityChart plots temperature (°C, 0–40) against relative
	// humidity (%, 0–100).
	RelativeHumidityChart Chart = "relative-humidity"
)

// Valid reports whether c names a known reference chart.
func (c Chart) Valid() bool {
	return c == DepressionChart || c == RelativeHumidityChart
}

// Point is a single chart-space coordinate. X is always temperature in °C;
// Y is dew-point depression (°C) or relative humidity (%) depending on chart.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartRegion is the polygon overlay for one risk category on a chart.
// Points trace the region boundary; the first and last point are not
// repeated (closed implicitly by the renderer).
type ChartRegion struct {
	Category RiskCategory `json:"category"`
	Points   []Point      `json:"points"`
}

// depressionRegions traces the rule-table envelopes in depression chart
// space. Listed in classifier priority order so the renderer can stack them
// highest-risk last (painted on top).
var depressionRegions = []ChartRegion{
	{
		Category: RiskSeriousAnyPower,
		Points:   []Point{{0, 0}, {20, 0}, {20, 8}, {0, 8}},
	},
	{
		Category: RiskSeriousDescentPower,
		Points:   []Point{{0, 0}, {20, 0}, {20, 12}, {0, 12}},
	},
	{
		Category: RiskModerateCruiseSerious,
		Points:   []Point{{0, 0}, {30, 0}, {30, 15}, {0, 15}},
	},
	{
		Category: RiskLightCruiseOrDescent,
		Points:   []Point{{0, 0}, {40, 0}, {40, 25}, {0, 25}},
	},
}

// humidityChartTemps are the temperature samples at which the depression
// boundaries are converted to relative-humidity space. The Magnus curve is
// close to linear over 0–40°C, so a handful of samples per boundary keeps
// the rendered region smooth.
var humidityChartTemps = []float64{0, 5, 10, 15, 20, 25, 30, 35, 40}

// ChartRegions returns the polygon overlays for the named chart in classifier
// priority order, or nil for an unknown chart.
func ChartRegions(c Chart) []ChartRegion {
	switch c {
	case DepressionChart:
		return depressionRegions
	case RelativeHumidityChart:
		return humidityRegions()
	default:
		return nil
	}
}

// humidityRegions derives the relative-humidity chart overlays from the
// rule-table envelopes. Each region spans from its depression boundary
// (converted to RH at each sample temperature) up to 100% humidity.
func humidityRegions() []ChartRegion {
	regions := make([]ChartRegion, 0, len(riskRules))
	for _, rule := range riskRules {
		regions = append(regions, ChartRegion{
			Category: rule.category,
			Points:   humidityBoundary(rule.maxTemp, rule.maxDepression),
		})
	}
	return regions
}

// humidityBoundary traces the lower RH edge left to right along sample
// temperatures, then closes along the 100% line right to left.
func humidityBoundary(maxTemp, maxDepression float64) []Point {
	lower := make([]Point, 0, len(humidityChartTemps))
	for _, t := range humidityChartTemps {
		if t > maxTemp {
			break
		}
		lower = append(lower, Point{X: t, Y: round1(RelativeHumidity(t, t-maxDepression))})
	}

	points := make([]Point, 0, len(lower)+2)
	points = append(points, lower...)
	points = append(points, Point{X: maxTemp, Y: 100}, Point{X: 0, Y: 100})
	return points
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
