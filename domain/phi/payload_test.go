package phi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMipPayloadRoundTrip(t *testing.T) {
	original := testMip(t, 0.25, []int{0, 1}, []int{2})

	payload := original.ToPayload()
	rebuilt, err := MipFromPayload(payload)
	require.NoError(t, err)

	assert.True(t, original.Equal(rebuilt))
	assert.Equal(t, original.Direction(), rebuilt.Direction())
	assert.Equal(t, original.Purview(), rebuilt.Purview())
	require.NotNil(t, rebuilt.Partition())
	assert.True(t, original.Partition().Equal(*rebuilt.Partition()))

	// Repertoires survive bit-for-bit.
	assert.True(t, original.UnpartitionedRepertoire().Equal(rebuilt.UnpartitionedRepertoire()))
	assert.True(t, original.PartitionedRepertoire().Equal(rebuilt.PartitionedRepertoire()))
}

func TestNullMipPayloadRoundTrip(t *testing.T) {
	original := NewNullMip(DirectionEffect, []int{0}, nil)

	rebuilt, err := MipFromPayload(original.ToPayload())
	require.NoError(t, err)

	assert.True(t, original.Equal(rebuilt))
	assert.Nil(t, rebuilt.Partition())
	assert.Nil(t, rebuilt.UnpartitionedRepertoire())
}

func TestMipPayloadJSON(t *testing.T) {
	payload := testMip(t, 0.25, []int{0}, []int{1}).ToPayload()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"direction":"cause"`)

	var decoded MipPayload
	require.NoError(t, json.Unmarshal(raw, &decoded))

	rebuilt, err := MipFromPayload(decoded)
	require.NoError(t, err)
	assert.True(t, testMip(t, 0.25, []int{0}, []int{1}).Equal(rebuilt))
}

func TestMipPayloadRejectsBadDirection(t *testing.T) {
	payload := testMip(t, 0.25, []int{0}, []int{1}).ToPayload()
	payload.Direction = "sideways"

	_, err := MipFromPayload(payload)
	assert.Error(t, err)
}

func TestMicePayloadRoundTrip(t *testing.T) {
	original, err := NewMice(testMip(t, 0.25, []int{0}, []int{1}))
	require.NoError(t, err)

	rebuilt, err := MiceFromPayload(original.ToPayload())
	require.NoError(t, err)
	assert.True(t, original.Equal(rebuilt))
}

func TestCutPayloadRoundTrip(t *testing.T) {
	original := NewCut([]int{0, 2}, []int{1})
	rebuilt := CutFromPayload(original.ToPayload())
	assert.True(t, original.Equal(rebuilt))
}

func TestConceptPayloadCarriesExpandedRepertoires(t *testing.T) {
	sub := newStubSubsystem(2, []int{0, 1}, []int{1, 0})
	payload := testConcept(t, sub).ToPayload()

	assert.Equal(t, 0.25, payload.Phi)
	assert.Equal(t, []int{0}, payload.Mechanism)
	require.NotNil(t, payload.Cause)
	require.NotNil(t, payload.Effect)
	require.NotNil(t, payload.ExpandedCauseRepertoire)
	assert.Equal(t, []float64{0.75, 0.25}, payload.ExpandedCauseRepertoire.Data)
	require.NotNil(t, payload.ExpandedEffectRepertoire)
	assert.Equal(t, []float64{0.5, 0.5}, payload.ExpandedEffectRepertoire.Data)
}

func TestConceptPayloadWithoutSubsystem(t *testing.T) {
	c := NewConcept(0.1, []int{0}, nil, nil, nil, false)
	payload := c.ToPayload()

	assert.Nil(t, payload.Cause)
	assert.Nil(t, payload.ExpandedCauseRepertoire)
}
