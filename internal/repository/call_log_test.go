package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vatsav/emergency_dispatch_system/internal/models"
)

func TestDecodeTranscript_Valid(t *testing.T) {
	raw := []byte(`[{"message":{"role":"user","content":"There is a fire"}},{"message":{"role":"assistant","content":"Help is on the way"}}]`)

	transcript := decodeTranscript(raw)

	require.Len(t, transcript, 2)
	assert.Equal(t, "user", transcript[0].Message.Role)
	assert.Equal(t, "There is a fire", transcript[0].Message.Content)
	assert.Equal(t, "assistant", transcript[1].Message.Role)
}

func TestDecodeTranscript_DegradesToEmpty(t *testing.T) {
	testCases := []struct {
		name string
		raw  []byte
	}{
		{name: "nil", raw: nil},
		{name: "empty", raw: []byte{}},
		{name: "malformed json", raw: []byte(`{"not": "an array"`)},
		{name: "wrong shape", raw: []byte(`{"message": "plain object"}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transcript := decodeTranscript(tc.raw)

			// Битые данные не роняют выборку, а деградируют до пустого транскрипта
			require.NotNil(t, transcript)
			assert.Empty(t, transcript)
		})
	}
}

func TestDecodeTranscript_EmptyArray(t *testing.T) {
	transcript := decodeTranscript([]byte(`[]`))

	require.NotNil(t, transcript)
	assert.Equal(t, []models.TranscriptEntry{}, transcript)
}

func TestDecodeEmotions_Valid(t *testing.T) {
	emotions := decodeEmotions([]byte(`{"fear": 0.9, "panic": 0.4}`))

	require.Len(t, emotions, 2)
	assert.InDelta(t, 0.9, emotions["fear"], 0.0001)
	assert.InDelta(t, 0.4, emotions["panic"], 0.0001)
}

func TestDecodeEmotions_DegradesToEmpty(t *testing.T) {
	testCases := []struct {
		name string
		raw  []byte
	}{
		{name: "nil", raw: nil},
		{name: "malformed json", raw: []byte(`{"fear":`)},
		{name: "non-numeric values", raw: []byte(`{"fear": "high"}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			emotions := decodeEmotions(tc.raw)

			require.NotNil(t, emotions)
			assert.Empty(t, emotions)
		})
	}
}
