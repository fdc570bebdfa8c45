package leveldata

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Spawn is a named spawn point.
type Spawn struct {
	X, Y float64
	Kind string
}

// Point is a world position.
type Point struct {
	X, Y float64
}

// ZoneDef describes one camera zone as authored in the map.
type ZoneDef struct {
	Name     string
	X, Y     float64
	W, H     float64
	Zoom     float64
	Priority int
	OneShot  bool
}

// Level is the parsed static level content.
type Level struct {
	Width  int // pixels
	Height int

	Walls             []Rect
	Platforms         []Rect
	FloatingPlatforms []Rect
	DeadZones         []Rect

	PlayerSpawn Point
	Enemies     []Spawn
	Coins       []Point
	Zones       []ZoneDef
}
