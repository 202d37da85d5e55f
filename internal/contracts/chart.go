package contracts

// PieSlice is one slice of the landing outcome pie chart
type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PieSummary is the chart-ready landing outcome aggregate
// ⭐ SSOT: 파이 차트 데이터 계약
type PieSummary struct {
	Site   string     `json:"site"`
	Title  string     `json:"title"`
	Slices []PieSlice `json:"slices"`
}

// Labels returns slice labels in slice order
func (p PieSummary) Labels() []string {
	labels := make([]string, len(p.Slices))
	for i, s := range p.Slices {
		labels[i] = s.Label
	}
	return labels
}

// Values returns slice values in slice order
func (p PieSummary) Values() []int {
	values := make([]int, len(p.Slices))
	for i, s := range p.Slices {
		values[i] = s.Value
	}
	return values
}

// Total returns the sum of all slice values
func (p PieSummary) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// ScatterPoint is one (payload, outcome, category) triple
type ScatterPoint struct {
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	OutcomeClass    int     `json:"outcome_class"`
	BoosterCategory string  `json:"booster_category"`
}

// ScatterPlot is the chart-ready payload vs. outcome projection
// ⭐ SSOT: 산점도 데이터 계약
type ScatterPlot struct {
	Site   string         `json:"site"`
	Title  string         `json:"title"`
	Low    float64        `json:"low"`
	High   float64        `json:"high"`
	Points []ScatterPoint `json:"points"`
}

// Categories returns distinct booster categories in first-appearance order.
// The chart colors points by this key.
func (s ScatterPlot) Categories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range s.Points {
		if !seen[p.BoosterCategory] {
			seen[p.BoosterCategory] = true
			categories = append(categories, p.BoosterCategory)
		}
	}
	return categories
}

// ByCategory groups points by booster category
func (s ScatterPlot) ByCategory() map[string][]ScatterPoint {
	groups := make(map[string][]ScatterPoint)
	for _, p := range s.Points {
		groups[p.BoosterCategory] = append(groups[p.BoosterCategory], p)
	}
	return groups
}

// PayloadRange is the payload slider selection
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// SelectorState is the current value of every dashboard input
type SelectorState struct {
	Site    string       `json:"site"`
	Payload PayloadRange `json:"payload"`
}

// DashboardView bundles both charts for one selector state
type DashboardView struct {
	Pie     PieSummary  `json:"pie"`
	Scatter ScatterPlot `json:"scatter"`
}

// SliderMark is a labelled tick on the payload slider
type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// SliderConfig describes the payload range slider
type SliderConfig struct {
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []SliderMark `json:"marks"`
}
