package contracts

// AllSites is the site selector value that disables site narrowing
const AllSites = "ALL"

// Dataset column names as they appear in the launch records CSV
// ⭐ SSOT: 컬럼명은 여기서만 정의
const (
	ColumnFlightNumber    = "Flight Number"
	ColumnLaunchSite      = "Launch Site"
	ColumnOutcomeClass    = "class"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterVersion  = "Booster Version"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnRowIndex        = "row_index"
)

// RequiredColumns must be present in every dataset source
var RequiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnOutcomeClass,
	ColumnBoosterCategory,
}

// LaunchRecord is one row of the launch dataset
type LaunchRecord struct {
	RowIndex        int     `json:"row_index"`
	FlightNumber    int     `json:"flight_number,omitempty"`
	LaunchSite      string  `json:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	OutcomeClass    int     `json:"outcome_class"` // 1 = landed, 0 = not
	BoosterVersion  string  `json:"booster_version,omitempty"`
	BoosterCategory string  `json:"booster_category"`
}

// Landed reports whether the first stage landed successfully
func (r LaunchRecord) Landed() bool {
	return r.OutcomeClass == 1
}

// SiteOption is one entry of the launch site dropdown
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// siteLabels are the human readable names shown in the dropdown
var siteLabels = map[string]string{
	"CCAFS LC-40":  "Cape Canaveral Launch LC-40",
	"CCAFS SLC-40": "Cape Canaveral Space Launch SLC-40",
	"KSC LC-39A":   "Kennedy Space Center Launch Complex 39A",
	"VAFB SLC-4E":  "Vandenberg Space Launch Complex 4",
}

// SiteLabel returns the dropdown label for a site identifier
func SiteLabel(site string) string {
	if site == AllSites {
		return "All Sites"
	}
	if label, ok := siteLabels[site]; ok {
		return label
	}
	return site
}

// DatasetStats summarizes a loaded dataset
type DatasetStats struct {
	Rows         int      `json:"rows"`
	Landed       int      `json:"landed"`
	Sites        []string `json:"sites"`
	MinPayloadKg float64  `json:"min_payload_kg"`
	MaxPayloadKg float64  `json:"max_payload_kg"`
}

// SuccessRate returns the share of landed records (0.0 - 1.0)
func (s DatasetStats) SuccessRate() float64 {
	if s.Rows == 0 {
		return 0.0
	}
	return float64(s.Landed) / float64(s.Rows)
}
