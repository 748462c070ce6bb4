package mapping

//go:generate go tool stringer -type=AttrKind -output=attrkind_string.go

// AttrKind selects which payload of an Attr is meaningful.
type AttrKind int

const (
	AttrInvalid AttrKind = iota
	AttrName
	AttrAlias
	AttrTo
	AttrFrom
	AttrIgnore
)

var attrKeys = map[string]AttrKind{
	"name":   AttrName,
	"alias":  AttrAlias,
	"to":     AttrTo,
	"from":   AttrFrom,
	"ignore": AttrIgnore,
}

// Key returns the YAML key of the kind.
func (k AttrKind) Key() string {
	for key, v := range attrKeys {
		if v == k {
			return key
		}
	}

	return ""
}

// AttrKindFromKey returns the kind for a YAML key.
func AttrKindFromKey(key string) (AttrKind, bool) {
	k, ok := attrKeys[key]
	return k, ok
}
