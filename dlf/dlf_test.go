package dlf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dlt/dltcore/dlf"
)

const sampleDlf = `
<dltfilter>
    <filter>
        <ecuid>E1</ecuid>
        <applicationid>A1</applicationid>
        <contextid>C1</contextid>
        <logLevelMax>7</logLevelMax>
        <enableecuid>1</enableecuid>
        <enableapplicationid>1</enableapplicationid>
        <enablecontextid>1</enablecontextid>
        <enableLogLevelMax>1</enableLogLevelMax>
        <enablefilter>1</enablefilter>
    </filter>
    <filter>
        <ecuid>E2</ecuid>
        <applicationid>A2</applicationid>
        <contextid>C2</contextid>
        <logLevelMax>4</logLevelMax>
        <enableecuid>0</enableecuid>
        <enableapplicationid>1</enableapplicationid>
        <enablecontextid>1</enablecontextid>
        <enableLogLevelMax>1</enableLogLevelMax>
        <enablefilter>1</enablefilter>
    </filter>
    <filter>
        <ecuid>E3</ecuid>
        <applicationid>A3</applicationid>
        <contextid>C3</contextid>
        <logLevelMax>7</logLevelMax>
        <enableecuid>1</enableecuid>
        <enableapplicationid>1</enableapplicationid>
        <enablecontextid>1</enablecontextid>
        <enableLogLevelMax>1</enableLogLevelMax>
        <enablefilter>0</enablefilter>
    </filter>
</dltfilter>
`

func TestLoadParsesEnabledFilters(t *testing.T) {
	cfg, err := dlf.Load(strings.NewReader(sampleDlf))
	require.NoError(t, err)

	require.Len(t, cfg.EcuIDs, 1)
	assert.Equal(t, "E1", cfg.EcuIDs[0].ID)
	assert.EqualValues(t, 7, cfg.EcuIDs[0].Level)

	require.Len(t, cfg.AppIDs, 2)
	assert.Equal(t, "A1", cfg.AppIDs[0].ID)
	assert.Equal(t, "A2", cfg.AppIDs[1].ID)
	assert.EqualValues(t, 4, cfg.AppIDs[1].Level)

	require.Len(t, cfg.ContextIDs, 2)
	assert.Equal(t, "C1", cfg.ContextIDs[0].ID)
	assert.Equal(t, "C2", cfg.ContextIDs[1].ID)

	assert.Equal(t, 2, cfg.AppIDCount, "disabled-filter entry should not count")
	assert.Equal(t, 2, cfg.ContextIDCount)
}

func TestLoadSkipsEntryWithFilterDisabled(t *testing.T) {
	cfg, err := dlf.Load(strings.NewReader(sampleDlf))
	require.NoError(t, err)

	for _, a := range cfg.AppIDs {
		assert.NotEqual(t, "A3", a.ID)
	}
}

func TestLoadSkipsDisabledEcuID(t *testing.T) {
	cfg, err := dlf.Load(strings.NewReader(sampleDlf))
	require.NoError(t, err)

	for _, e := range cfg.EcuIDs {
		assert.NotEqual(t, "E2", e.ID)
	}
}

func TestConfigCompile(t *testing.T) {
	cfg, err := dlf.Load(strings.NewReader(sampleDlf))
	require.NoError(t, err)

	level := uint8(5)
	compiled := cfg.Compile(5, &level)
	require.NotNil(t, compiled)

	_, ok := compiled.AppIDs["A1"]
	assert.True(t, ok)
	_, ok = compiled.AppIDs["A2"]
	assert.False(t, ok, "A2's level 4 is below the minLevel cutoff of 5")
}

func TestLoadEmptyDocument(t *testing.T) {
	cfg, err := dlf.Load(strings.NewReader("<dltfilter></dltfilter>"))
	require.NoError(t, err)
	assert.Empty(t, cfg.EcuIDs)
	assert.Empty(t, cfg.AppIDs)
	assert.Empty(t, cfg.ContextIDs)
}
