package clean

import "time"

//enumconv:generate
type Day uint8

const (
	//enumconv:name "Mon"
	//enumconv:alias "monday" "1"
	//enumconv:to time.Monday
	//enumconv:from time.Monday
	Monday Day = iota + 1
	//enumconv:to time.Tuesday
	//enumconv:from time.Tuesday
	Tuesday
	//enumconv:ignore
	Holiday Day = 99
)

var _ = time.Monday
