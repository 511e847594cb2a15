package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dlt/dltcore/filter"
)

func level(n uint8) *uint8 { return &n }

func TestEvaluateMinLogLevel(t *testing.T) {
	p := filter.Compile(filter.Config{MinLogLevel: level(3)})

	assert.False(t, p.Evaluate(filter.Input{IsLog: true, Level: 3}))
	assert.True(t, p.Evaluate(filter.Input{IsLog: true, Level: 4}))
	assert.False(t, p.Evaluate(filter.Input{IsLog: false, Level: 7}), "non-log messages are not subject to the level cutoff")
}

func TestEvaluateIDSets(t *testing.T) {
	p := filter.Compile(filter.Config{
		AppIDs:     []string{"APP"},
		ContextIDs: []string{"CTX"},
		EcuIDs:     []string{"ECU"},
	})

	assert.False(t, p.Evaluate(filter.Input{HasExtendedHeader: true, AppID: "APP", CtxID: "CTX", EcuID: "ECU"}))
	assert.True(t, p.Evaluate(filter.Input{HasExtendedHeader: true, AppID: "OTHER", CtxID: "CTX", EcuID: "ECU"}))
	assert.True(t, p.Evaluate(filter.Input{HasExtendedHeader: true, AppID: "APP", CtxID: "OTHER", EcuID: "ECU"}))
	assert.True(t, p.Evaluate(filter.Input{HasExtendedHeader: true, AppID: "APP", CtxID: "CTX", EcuID: "OTHER"}))
}

func TestEvaluateNoHeaderlessFallbackWhenUnconfigured(t *testing.T) {
	p := filter.Compile(filter.Config{})
	assert.False(t, p.Evaluate(filter.Input{HasExtendedHeader: false}))
}

func TestEvaluateHeaderlessFallbackDropsWhenPartiallyConfigured(t *testing.T) {
	p := filter.CompileFromLevelPairs(
		[]filter.IDLevel{{ID: "APP1", Level: 5}},
		nil,
		nil,
		0,
		nil,
	)
	p.AppIDCount = 3 // only 1 of 3 known app ids survived the level cutoff

	assert.True(t, p.Evaluate(filter.Input{HasExtendedHeader: false}), "a message with no extended header can't be matched against a partial app id filter, so it is dropped conservatively")
}

func TestEvaluateHeaderlessFallbackKeptWhenFullyConfigured(t *testing.T) {
	p := filter.CompileFromLevelPairs(
		[]filter.IDLevel{{ID: "APP1"}, {ID: "APP2"}},
		nil,
		nil,
		0,
		nil,
	)
	p.AppIDCount = 2 // every known app id is present in the filter

	assert.False(t, p.Evaluate(filter.Input{HasExtendedHeader: false}))
}

func TestCompileFromLevelPairsFiltersByLevel(t *testing.T) {
	pairs := []filter.IDLevel{{ID: "A1", Level: 2}, {ID: "A2", Level: 5}}
	p := filter.CompileFromLevelPairs(pairs, nil, nil, 4, nil)

	require.NotNil(t, p)
	_, ok := p.AppIDs["A1"]
	assert.False(t, ok, "A1's level 2 is below minLevel 4")
	_, ok = p.AppIDs["A2"]
	assert.True(t, ok)
}

func TestEvaluateNilConfigNeverDrops(t *testing.T) {
	var p *filter.ProcessedFilterConfig
	assert.False(t, p.Evaluate(filter.Input{IsLog: true, Level: 7}))
}
