package stats_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dlt/dltcore/argument"
	"github.com/go-dlt/dltcore/header"
	"github.com/go-dlt/dltcore/message"
	"github.com/go-dlt/dltcore/reader"
	"github.com/go-dlt/dltcore/stats"
)

func buildLogMessage(appID, ctxID, ecuID string, level message.LogLevel) []byte {
	msg := message.Message{
		StorageHeader: &header.StorageHeader{EcuID: ecuID},
		StandardHeader: header.StandardHeader{
			Version:           1,
			UseExtendedHeader: true,
		},
		ExtendedHeader: &header.ExtendedHeader{
			Verbose:  true,
			Mstp:     header.MstpLog,
			Mtin:     uint8(level),
			ArgCount: 1,
			AppID:    appID,
			CtxID:    ctxID,
		},
		Payload: message.PayloadContent{
			Kind: message.PayloadVerbose,
			Arguments: []argument.Argument{
				{TypeInfo: argument.TypeInfo{Kind: argument.KindBool}, Value: argument.Value{Bool: true}},
			},
		},
	}

	b, err := msg.Bytes()
	if err != nil {
		panic(err)
	}

	return b
}

func TestCollectStatisticsTally(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(buildLogMessage("APP", "CTX", "ECU1", message.LogError))
	buf.Write(buildLogMessage("APP", "CTX", "ECU1", message.LogWarn))
	buf.Write(buildLogMessage("APP", "OTH", "ECU2", message.LogError))

	r := reader.NewSyncReader(&buf, true)
	collector := stats.NewTallyCollector()

	require.NoError(t, stats.CollectStatistics(r, collector))

	assert.EqualValues(t, 2, collector.EcuIDs["ECU1"].LogError+collector.EcuIDs["ECU1"].LogWarning)
	assert.EqualValues(t, 1, collector.EcuIDs["ECU2"].LogError)
	assert.EqualValues(t, 3, collector.AppIDs["APP"].LogError+collector.AppIDs["APP"].LogWarning)
	assert.EqualValues(t, 2, collector.ContextIDs["CTX"].LogError+collector.ContextIDs["CTX"].LogWarning)
	assert.EqualValues(t, 1, collector.ContextIDs["OTH"].LogError)
	assert.False(t, collector.ContainedNonVerbose)
}

func TestTallyCollectorMergeCommutativeAssociative(t *testing.T) {
	a := stats.NewTallyCollector()
	a.EcuIDs["E1"] = &stats.LevelDistribution{LogError: 2}
	a.ContainedNonVerbose = true

	b := stats.NewTallyCollector()
	b.EcuIDs["E1"] = &stats.LevelDistribution{LogError: 3}
	b.EcuIDs["E2"] = &stats.LevelDistribution{LogWarning: 1}

	c := stats.NewTallyCollector()
	c.EcuIDs["E3"] = &stats.LevelDistribution{NonLog: 5}

	ab := stats.NewTallyCollector()
	ab.Merge(a)
	ab.Merge(b)
	abc := stats.NewTallyCollector()
	abc.Merge(ab)
	abc.Merge(c)

	bc := stats.NewTallyCollector()
	bc.Merge(b)
	bc.Merge(c)
	aBC := stats.NewTallyCollector()
	aBC.Merge(a)
	aBC.Merge(bc)

	assert.Equal(t, abc.EcuIDs["E1"].LogError, aBC.EcuIDs["E1"].LogError)
	assert.Equal(t, abc.EcuIDs["E2"].LogWarning, aBC.EcuIDs["E2"].LogWarning)
	assert.Equal(t, abc.EcuIDs["E3"].NonLog, aBC.EcuIDs["E3"].NonLog)
	assert.Equal(t, abc.ContainedNonVerbose, aBC.ContainedNonVerbose)

	ba := stats.NewTallyCollector()
	ba.Merge(b)
	ba.Merge(a)
	assert.Equal(t, ab.EcuIDs["E1"].LogError, ba.EcuIDs["E1"].LogError)
}

func TestPrometheusCollector(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(buildLogMessage("APP", "CTX", "ECU1", message.LogError))

	reg := prometheus.NewRegistry()
	collector := stats.NewPrometheusCollector(reg)

	r := reader.NewSyncReader(&buf, true)
	require.NoError(t, stats.CollectStatistics(r, collector))

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, fam := range families {
		if fam.GetName() != "dltcore_messages_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			if labelValue(m, "ecu_id") == "ECU1" && labelValue(m, "level") == "error" {
				found = true
				assert.Equal(t, float64(1), m.GetCounter().GetValue())
			}
		}
	}

	assert.True(t, found, "expected a dltcore_messages_total series for ECU1/error")
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}

	return ""
}
