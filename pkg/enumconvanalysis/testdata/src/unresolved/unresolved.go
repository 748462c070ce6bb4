package unresolved

type Shade int

const Crimson Shade = 0

//enumconv:generate
type Color int

const (
	//enumconv:to Crimsn // want `unresolved_expr: cannot resolve "Crimsn".*did you mean Crimson`
	Red Color = iota
	//enumconv:nickname "r" // want `invalid_directive: unknown directive`
	Green
)

//enumconv:generate
type Generic[T any] int // want `invalid_enum`

//enumconv:generate
type Lonely int // want `invalid_field: .*Members failed "required" validation`
