package simulation

import "math"

// 2D safety scene geometry. The room is a fixed 10x8 rectangle; the person
// starts in the middle and moves in half-unit steps.
const (
	SceneRoomWidth     = 10.0
	SceneRoomHeight    = 8.0
	SceneStartX        = 5.0
	SceneStartY        = 4.0
	SceneMoveStep      = 0.5
	SceneZoneThreshold = 0.5
)

// SceneStatus classifies the person's current position.
type SceneStatus string

const (
	SceneStatusSafe      SceneStatus = "safe"
	SceneStatusDanger    SceneStatus = "danger"
	SceneStatusSearching SceneStatus = "searching"
)

// Direction is one of the four scene movement commands.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Point is a position in the scene.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SceneScenario is a fixed emergency layout: where it is safe to go, where
// the hazards are, and the safety instructions shown alongside.
type SceneScenario struct {
	Name         string   `json:"name"`
	SafeZones    []Point  `json:"safe_zones"`
	Hazards      []Point  `json:"hazards"`
	Instructions []string `json:"instructions"`
}

var sceneScenarios = map[string]SceneScenario{
	"earthquake": {
		Name:      "earthquake",
		SafeZones: []Point{{2.5, 2.5}, {6.5, 2.5}}, // under desks
		Hazards:   []Point{{8, 7}, {2, 7}},         // falling objects
		Instructions: []string{
			"DROP to the ground",
			"COVER under a sturdy desk",
			"HOLD ON until shaking stops",
			"Stay away from windows and tall furniture",
		},
	},
	"fire": {
		Name:      "fire",
		SafeZones: []Point{{5, 0}, {0, 3.5}, {10, 3.5}}, // exits
		Hazards:   []Point{{7, 7}, {3, 6}, {8, 3}},      // fire spots
		Instructions: []string{
			"Stay low to avoid smoke",
			"Use nearest exit",
			"Don't use elevators",
			"Meet at assembly point",
		},
	},
	"tornado": {
		Name:      "tornado",
		SafeZones: []Point{{2.5, 2.5}, {6.5, 2.5}}, // interior rooms
		Hazards:   []Point{{0, 3.5}, {10, 3.5}},    // windows
		Instructions: []string{
			"Go to lowest floor",
			"Stay away from windows",
			"Get under sturdy furniture",
			"Cover your head",
		},
	},
}

// LookupScenario returns the fixed layout for a scene scenario.
func LookupScenario(name string) (SceneScenario, bool) {
	s, ok := sceneScenarios[name]
	return s, ok
}

// Move returns the position after one step in the given direction.
func Move(pos Point, dir Direction) Point {
	switch dir {
	case DirectionUp:
		pos.Y += SceneMoveStep
	case DirectionDown:
		pos.Y -= SceneMoveStep
	case DirectionLeft:
		pos.X -= SceneMoveStep
	case DirectionRight:
		pos.X += SceneMoveStep
	}
	return pos
}

// near reports whether two points are within the zone threshold on both axes.
func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < SceneZoneThreshold && math.Abs(a.Y-b.Y) < SceneZoneThreshold
}

// EvaluateScene classifies a position against the scenario's zones. Hazards
// win over safe zones: standing in both is danger.
func EvaluateScene(scenario SceneScenario, pos Point) SceneStatus {
	for _, hazard := range scenario.Hazards {
		if near(pos, hazard) {
			return SceneStatusDanger
		}
	}
	for _, zone := range scenario.SafeZones {
		if near(pos, zone) {
			return SceneStatusSafe
		}
	}
	return SceneStatusSearching
}
