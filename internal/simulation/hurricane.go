package simulation

// HurricaneLevel is the discrete intensity selector of the hurricane
// simulator.
type HurricaneLevel string

const (
	HurricaneLow      HurricaneLevel = "Low"
	HurricaneModerate HurricaneLevel = "Moderate"
	HurricaneHigh     HurricaneLevel = "High"
	HurricaneExtreme  HurricaneLevel = "Extreme"
)

func (l HurricaneLevel) IsValid() bool {
	_, ok := hurricaneProfiles[l]
	return ok
}

// HurricaneProfile is the fixed characteristics table row for one intensity
// level.
type HurricaneProfile struct {
	Level       HurricaneLevel `json:"level"`
	Category    string         `json:"category"`
	WindSpeed   string         `json:"wind_speed"`
	StormSurge  string         `json:"storm_surge"`
	Temperature string         `json:"temperature"`
	Color       string         `json:"color"`
	// GaugeValue is the wind-speed gauge reading: the midpoint of the
	// level's wind-speed range in mph.
	GaugeValue  float64  `json:"gauge_value"`
	Precautions []string `json:"precautions"`
}

var hurricaneProfiles = map[HurricaneLevel]HurricaneProfile{
	HurricaneLow: {
		Level:       HurricaneLow,
		Category:    "Category 1",
		WindSpeed:   "74-95 mph",
		StormSurge:  "4-5 feet",
		Temperature: "75-80°F",
		Color:       "yellow",
		GaugeValue:  (74 + 95) / 2.0,
		Precautions: []string{
			"Stay indoors",
			"Keep away from windows",
			"Have emergency supplies ready",
			"Monitor weather updates",
		},
	},
	HurricaneModerate: {
		Level:       HurricaneModerate,
		Category:    "Category 2-3",
		WindSpeed:   "96-129 mph",
		StormSurge:  "6-12 feet",
		Temperature: "80-85°F",
		Color:       "orange",
		GaugeValue:  (96 + 129) / 2.0,
		Precautions: []string{
			"Secure outdoor objects",
			"Prepare for power outages",
			"Fill vehicles with fuel",
			"Have evacuation plan ready",
			"Stock up on water and food",
		},
	},
	HurricaneHigh: {
		Level:       HurricaneHigh,
		Category:    "Category 4",
		WindSpeed:   "130-156 mph",
		StormSurge:  "13-18 feet",
		Temperature: "85-90°F",
		Color:       "red",
		GaugeValue:  (130 + 156) / 2.0,
		Precautions: []string{
			"Follow evacuation orders",
			"Secure all windows and doors",
			"Expect long-term power outages",
			"Prepare for severe flooding",
			"Move to higher ground if needed",
		},
	},
	HurricaneExtreme: {
		Level:       HurricaneExtreme,
		Category:    "Category 5",
		WindSpeed:   "157+ mph",
		StormSurge:  "19+ feet",
		Temperature: ">90°F",
		Color:       "purple",
		GaugeValue:  (157 + 200) / 2.0,
		Precautions: []string{
			"IMMEDIATE EVACUATION REQUIRED",
			"Catastrophic damage expected",
			"Areas may be uninhabitable",
			"Seek emergency shelter",
			"Follow all official instructions",
		},
	},
}

// LookupHurricane returns the fixed profile for the given intensity level.
func LookupHurricane(level HurricaneLevel) (HurricaneProfile, bool) {
	profile, ok := hurricaneProfiles[level]
	return profile, ok
}
