package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpYAML(t *testing.T) {
	p := Build(sampleFile(), Options{})

	data, err := DumpYAML(p.Enums)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "name: SampleEnum")
	assert.Contains(t, s, "Two&B")
	assert.Contains(t, s, "value: 100")
	assert.Contains(t, s, number+"=One")
	assert.Contains(t, s, "unique_inbound:")
}

func TestDumpSpew(t *testing.T) {
	p := Build(sampleFile(), Options{})

	s := DumpSpew(p.Enums)
	assert.Contains(t, s, "SampleEnum")
	assert.Contains(t, s, "Two&B")
}
