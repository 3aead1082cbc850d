package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaoslab/primeseed/internal/prime"
	"github.com/chaoslab/primeseed/internal/seed"
)

func pipelineResult(t *testing.T, maxBound int64, agents int) (*Scenario, *Result) {
	t.Helper()
	s := &Scenario{Name: "t", Max: maxBound, Agents: agents}
	result, err := New().Run(s)
	require.NoError(t, err)
	return s, result
}

func TestAssertPairsIncludeMissing(t *testing.T) {
	_, result := pipelineResult(t, 10, 0)

	err := assertPairsInclude(result.Pairs, [][2]int64{{3, 5}, {11, 13}})
	require.Error(t, err)

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Expected, "(11, 13)")
}

func TestAssertAlternatingAnchorDetectsDrift(t *testing.T) {
	_, result := pipelineResult(t, 100, 6)
	require.NoError(t, assertAlternatingAnchor(result.Seeds))

	// flip one anchor
	result.Seeds[2].IsUpper = true
	err := assertAlternatingAnchor(result.Seeds)
	require.Error(t, err)

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertAlternatingAnchor, ae.Type)
}

func TestAssertPositionBoundsDetectsEscape(t *testing.T) {
	_, result := pipelineResult(t, 100, 4)
	require.NoError(t, assertPositionBounds(result.Seeds))

	result.Seeds[0].Position = 3.0 // outside the band but inside [0, pi]
	assert.Error(t, assertPositionBounds(result.Seeds))

	result.Seeds[0].Position = -0.1
	assert.Error(t, assertPositionBounds(result.Seeds))
}

func TestAssertDeterministicRerunDetectsTamper(t *testing.T) {
	scenario, result := pipelineResult(t, 100, 8)
	require.NoError(t, assertDeterministicRerun(scenario, result.Seeds))

	tampered := make([]seed.Seed, len(result.Seeds))
	copy(tampered, result.Seeds)
	tampered[5].Velocity += 1e-9

	err := assertDeterministicRerun(scenario, tampered)
	require.Error(t, err)

	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertDeterministicRerun, ae.Type)
}

func TestAssertSeedCount(t *testing.T) {
	seeds := []seed.Seed{{Pair: prime.MustPair(3, 5)}}
	require.NoError(t, assertSeedCount(seeds, 1))
	assert.Error(t, assertSeedCount(seeds, 2))
}
