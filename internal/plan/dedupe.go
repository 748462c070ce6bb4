package plan

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"enumconv/internal/param"
)

// Dedupe computes the unique outbound and inbound signatures across
// members, each in first-seen declaration order. Running it again on the
// same members yields the same sequences.
func Dedupe(members []MemberDescriptor) (outbound, inbound []param.Signature) {
	outbound = unique(members, func(md *MemberDescriptor) []param.Signature { return md.Outbound })
	inbound = unique(members, func(md *MemberDescriptor) []param.Signature { return md.Inbound })

	return outbound, inbound
}

// unique keys signatures by their sorted type list. For signatures
// without duplicate types, equal keys mean type-equal signatures.
func unique(members []MemberDescriptor, pick func(*MemberDescriptor) []param.Signature) []param.Signature {
	seen := linkedhashmap.New()

	for i := range members {
		for _, sig := range pick(&members[i]) {
			key := sig.Key()
			if _, found := seen.Get(key); !found {
				seen.Put(key, sig)
			}
		}
	}

	out := make([]param.Signature, 0, seen.Size())
	seen.Each(func(_, value any) {
		out = append(out, value.(param.Signature))
	})

	return out
}
