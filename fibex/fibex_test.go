package fibex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dlt/dltcore/argument"
	"github.com/go-dlt/dltcore/errs"
	"github.com/go-dlt/dltcore/fibex"
)

const sampleFibex = `<?xml version="1.0" encoding="UTF-8"?>
<FIBEX>
  <ELEMENTS>
    <PDUS>
      <PDU ID="PDU_1">
        <SHORT-NAME>PDU_1</SHORT-NAME>
        <DESC>first pdu</DESC>
        <SIGNAL-INSTANCES>
          <SIGNAL-INSTANCE SEQUENCE-NUMBER="2">
            <SIGNAL-REF ID-REF="S_UINT16"/>
          </SIGNAL-INSTANCE>
          <SIGNAL-INSTANCE SEQUENCE-NUMBER="1">
            <SIGNAL-REF ID-REF="S_BOOL"/>
          </SIGNAL-INSTANCE>
        </SIGNAL-INSTANCES>
      </PDU>
      <PDU ID="PDU_CUSTOM">
        <SHORT-NAME>PDU_CUSTOM</SHORT-NAME>
        <SIGNAL-INSTANCES>
          <SIGNAL-INSTANCE SEQUENCE-NUMBER="1">
            <SIGNAL-REF ID-REF="SIG_SPEED"/>
          </SIGNAL-INSTANCE>
        </SIGNAL-INSTANCES>
      </PDU>
    </PDUS>
    <FRAMES>
      <FRAME ID="100">
        <SHORT-NAME>FRAME_100</SHORT-NAME>
        <PDU-INSTANCES>
          <PDU-INSTANCE SEQUENCE-NUMBER="1">
            <PDU-REF ID-REF="PDU_1"/>
          </PDU-INSTANCE>
          <PDU-INSTANCE SEQUENCE-NUMBER="2">
            <PDU-REF ID-REF="PDU_CUSTOM"/>
          </PDU-INSTANCE>
        </PDU-INSTANCES>
        <MANUFACTURER-EXTENSION>
          <APPLICATION_ID>APP</APPLICATION_ID>
          <CONTEXT_ID>CTX</CONTEXT_ID>
          <MESSAGE_TYPE>DLT_TYPE_LOG</MESSAGE_TYPE>
          <MESSAGE_INFO>DLT_LOG_INFO</MESSAGE_INFO>
        </MANUFACTURER-EXTENSION>
      </FRAME>
      <FRAME ID="100">
        <SHORT-NAME>FRAME_100_DUP</SHORT-NAME>
        <PDU-INSTANCES/>
        <MANUFACTURER-EXTENSION>
          <APPLICATION_ID>APP</APPLICATION_ID>
          <CONTEXT_ID>CTX</CONTEXT_ID>
        </MANUFACTURER-EXTENSION>
      </FRAME>
      <FRAME ID="200">
        <SHORT-NAME>FRAME_NO_EXT</SHORT-NAME>
        <PDU-INSTANCES/>
      </FRAME>
    </FRAMES>
    <SIGNALS>
      <SIGNAL ID="SIG_SPEED">
        <CODING-REF ID-REF="UINT32_CODING"/>
      </SIGNAL>
    </SIGNALS>
    <CODINGS>
      <CODING ID="UINT32_CODING">
        <CODED-TYPE BASE-DATA-TYPE="A_UINT32"/>
      </CODING>
    </CODINGS>
  </ELEMENTS>
</FIBEX>
`

func TestLoadResolvesFrameByKey(t *testing.T) {
	meta, err := fibex.Load(strings.NewReader(sampleFibex))
	require.NoError(t, err)

	fr, ok := meta.Lookup("CTX", "APP", 100)
	require.True(t, ok)

	assert.Equal(t, "FRAME_100", fr.ShortName)
	assert.Equal(t, "DLT_TYPE_LOG", fr.MessageType)
	require.Len(t, fr.Pdus, 2)

	assert.Equal(t, "first pdu", fr.Pdus[0].Description)
	require.Len(t, fr.Pdus[0].SignalTypes, 2)
	assert.Equal(t, argument.KindBool, fr.Pdus[0].SignalTypes[0].Kind)
	assert.Equal(t, argument.KindUnsigned, fr.Pdus[0].SignalTypes[1].Kind)
	assert.Equal(t, 16, fr.Pdus[0].SignalTypes[1].Width)

	require.Len(t, fr.Pdus[1].SignalTypes, 1)
	assert.Equal(t, argument.KindUnsigned, fr.Pdus[1].SignalTypes[0].Kind)
	assert.Equal(t, 32, fr.Pdus[1].SignalTypes[0].Width)
}

func TestLoadKeepsFirstOnDuplicateFrameID(t *testing.T) {
	meta, err := fibex.Load(strings.NewReader(sampleFibex))
	require.NoError(t, err)

	fr, ok := meta.FramesByID["100"]
	require.True(t, ok)
	assert.Equal(t, "FRAME_100", fr.ShortName, "duplicate frame id should keep the first-seen definition")
}

func TestLoadFallsBackToNumericIDWithoutExtension(t *testing.T) {
	meta, err := fibex.Load(strings.NewReader(sampleFibex))
	require.NoError(t, err)

	fr, ok := meta.Lookup("ANY_CTX", "ANY_APP", 200)
	require.True(t, ok, "a frame with no manufacturer extension should still resolve by numeric id")
	assert.Equal(t, "FRAME_NO_EXT", fr.ShortName)
}

func TestLoadUnknownFrameNotFound(t *testing.T) {
	meta, err := fibex.Load(strings.NewReader(sampleFibex))
	require.NoError(t, err)

	_, ok := meta.Lookup("CTX", "APP", 999)
	assert.False(t, ok)
}

func TestLoadCombinesMultipleSources(t *testing.T) {
	second := `<?xml version="1.0" encoding="UTF-8"?>
<FIBEX>
  <ELEMENTS>
    <FRAMES>
      <FRAME ID="300">
        <SHORT-NAME>FRAME_300</SHORT-NAME>
        <PDU-INSTANCES/>
        <MANUFACTURER-EXTENSION>
          <APPLICATION_ID>APP2</APPLICATION_ID>
          <CONTEXT_ID>CTX2</CONTEXT_ID>
        </MANUFACTURER-EXTENSION>
      </FRAME>
    </FRAMES>
  </ELEMENTS>
</FIBEX>
`
	meta, err := fibex.Load(strings.NewReader(sampleFibex), strings.NewReader(second))
	require.NoError(t, err)

	_, ok := meta.Lookup("CTX", "APP", 100)
	assert.True(t, ok)

	fr, ok := meta.Lookup("CTX2", "APP2", 300)
	assert.True(t, ok)
	assert.Equal(t, "FRAME_300", fr.ShortName)
}

func TestLoadRejectsMissingMandatoryAttributesAndTags(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantKind errs.Kind
	}{
		{
			name: "PDU missing ID",
			doc: `<FIBEX><ELEMENTS><PDUS>
				<PDU><SHORT-NAME>P</SHORT-NAME></PDU>
			</PDUS></ELEMENTS></FIBEX>`,
			wantKind: errs.KindAttribute,
		},
		{
			name: "FRAME missing ID",
			doc: `<FIBEX><ELEMENTS><FRAMES>
				<FRAME><SHORT-NAME>F</SHORT-NAME></FRAME>
			</FRAMES></ELEMENTS></FIBEX>`,
			wantKind: errs.KindAttribute,
		},
		{
			name: "SIGNAL missing ID",
			doc: `<FIBEX><ELEMENTS><SIGNALS>
				<SIGNAL><CODING-REF ID-REF="C"/></SIGNAL>
			</SIGNALS></ELEMENTS></FIBEX>`,
			wantKind: errs.KindAttribute,
		},
		{
			name: "CODING missing ID",
			doc: `<FIBEX><ELEMENTS><CODINGS>
				<CODING><CODED-TYPE BASE-DATA-TYPE="A_UINT8"/></CODING>
			</CODINGS></ELEMENTS></FIBEX>`,
			wantKind: errs.KindAttribute,
		},
		{
			name: "SIGNAL-REF missing ID-REF",
			doc: `<FIBEX><ELEMENTS><PDUS>
				<PDU ID="P1"><SIGNAL-INSTANCE SEQUENCE-NUMBER="1"><SIGNAL-REF/></SIGNAL-INSTANCE></PDU>
			</PDUS></ELEMENTS></FIBEX>`,
			wantKind: errs.KindAttribute,
		},
		{
			name: "PDU-REF missing ID-REF",
			doc: `<FIBEX><ELEMENTS><FRAMES>
				<FRAME ID="1"><SHORT-NAME>F</SHORT-NAME><PDU-INSTANCE SEQUENCE-NUMBER="1"><PDU-REF/></PDU-INSTANCE></FRAME>
			</FRAMES></ELEMENTS></FIBEX>`,
			wantKind: errs.KindAttribute,
		},
		{
			name: "FRAME missing SHORT-NAME",
			doc: `<FIBEX><ELEMENTS><FRAMES>
				<FRAME ID="1"><PDU-INSTANCES/></FRAME>
			</FRAMES></ELEMENTS></FIBEX>`,
			wantKind: errs.KindStructural,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fibex.Load(strings.NewReader(tt.doc))
			require.Error(t, err)

			kind, ok := errs.KindOf(err)
			require.True(t, ok, "expected a kinded error, got %v", err)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}
