package diagnostic

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a diagnostic.
type Kind int

const (
	// Structural covers descriptor problems that stop an enum from being generated.
	Structural Kind = iota
	// StringTypeNotAllowed: an outbound conversion targets the string type.
	StringTypeNotAllowed
	// DuplicateTypeNotAllowed: an outbound conversion repeats a target type on one
	// member, or an inbound conversion lists the same type twice.
	DuplicateTypeNotAllowed
	// SameTypesNotAllowed: a member declares two inbound conversions over the same
	// set of types.
	SameTypesNotAllowed
	// StringOnlyNotAllowed: an inbound conversion takes a single string parameter.
	StringOnlyNotAllowed
)

// Code returns the stable diagnostic code for the mapping rule kinds.
func (k Kind) Code() string {
	switch k {
	case StringTypeNotAllowed:
		return "EC000"
	case DuplicateTypeNotAllowed:
		return "EC001"
	case SameTypesNotAllowed:
		return "EC002"
	case StringOnlyNotAllowed:
		return "EC003"
	default:
		return ""
	}
}

// Title returns the human-readable message of the mapping rule kinds.
func (k Kind) Title() string {
	switch k {
	case StringTypeNotAllowed:
		return "String type is not allowed."
	case DuplicateTypeNotAllowed:
		return "Duplicate type is not allowed."
	case SameTypesNotAllowed:
		return "Same types is not allowed."
	case StringOnlyNotAllowed:
		return "String only is not allowed."
	default:
		return ""
	}
}
