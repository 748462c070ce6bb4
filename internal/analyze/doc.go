// Package analyze is the Go source front-end.
//
// It finds defined integer types marked with an //enumconv:generate
// comment, collects the constants of each type in declaration order and
// reads the //enumconv: directives on them:
//
//	//enumconv:name "One And A"
//	//enumconv:alias "1" "one"
//	//enumconv:to One
//	//enumconv:from One A
//	//enumconv:ignore
//
// Arguments of to and from are Go expressions type-checked in the scope of
// the file. The result is the same mapping.File the YAML front-end builds.
package analyze
