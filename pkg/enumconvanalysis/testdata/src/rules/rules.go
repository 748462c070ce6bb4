package rules

type Shade int

const (
	Dark Shade = iota
	Light
)

type Tone int

const (
	Warm Tone = iota
	Cool
)

//enumconv:generate
type Color int

const (
	//enumconv:to "red" // want "EC000: String type is not allowed"
	//enumconv:to Dark
	//enumconv:to Light // want "EC001: Duplicate type is not allowed"
	//enumconv:from Dark Light // want "EC001: Duplicate type is not allowed"
	//enumconv:from Dark Warm
	//enumconv:from Cool Light // want "EC002: Same types is not allowed"
	//enumconv:from "red" // want "EC003: String only is not allowed"
	Red Color = iota
	//enumconv:to Light
	//enumconv:from Light
	Green
)
