package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumconv/internal/param"
)

func sig(types ...string) param.Signature {
	s := make(param.Signature, len(types))
	for i, t := range types {
		s[i] = param.Parameter{Type: param.MustParseTypeRef(t), Value: "v"}
	}

	return s
}

func TestDedupe_FirstSeenOrder(t *testing.T) {
	members := []MemberDescriptor{
		{Outbound: []param.Signature{sig(alphabet)}, Inbound: []param.Signature{sig(group, alphabet)}},
		{Outbound: []param.Signature{sig(number), sig(alphabet)}, Inbound: []param.Signature{sig(alphabet, group), sig(number, alphabet)}},
	}

	outbound, inbound := Dedupe(members)
	require.Len(t, outbound, 2)
	assert.Equal(t, "("+alphabet+")", outbound[0].String())
	assert.Equal(t, "("+number+")", outbound[1].String())

	require.Len(t, inbound, 2)
	assert.Equal(t, "("+group+", "+alphabet+")", inbound[0].String(), "first declaration order is kept")
	assert.Equal(t, "("+number+", "+alphabet+")", inbound[1].String())
}

func TestDedupe_Idempotent(t *testing.T) {
	ep := Build(sampleFile(), Options{}).Enums[0]

	out1, in1 := Dedupe(ep.Members)
	out2, in2 := Dedupe(ep.Members)
	assert.Equal(t, out1, out2)
	assert.Equal(t, in1, in2)
}

func TestDedupe_MatchesUniqueByType(t *testing.T) {
	members := []MemberDescriptor{
		{Inbound: []param.Signature{sig(number, alphabet), sig(group)}},
		{Inbound: []param.Signature{sig(alphabet, number), sig(group, number)}},
	}

	_, inbound := Dedupe(members)

	var naive []param.Signature

	for _, md := range members {
		for _, s := range md.Inbound {
			if param.UniqueByType(naive, s) {
				naive = append(naive, s)
			}
		}
	}

	assert.Equal(t, naive, inbound)
}

func TestDedupe_Empty(t *testing.T) {
	outbound, inbound := Dedupe(nil)
	assert.Empty(t, outbound)
	assert.Empty(t, inbound)
}
