package aes128

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btclog/v2"
	"github.com/stretchr/testify/require"
)

// TestTraceLogging checks that round states are logged at trace level and
// that no raw key material reaches the log.
func TestTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := btclog.NewSLogger(btclog.NewDefaultHandler(&buf))
	logger.SetLevel(btclog.LevelTrace)

	UseLogger(logger)
	defer DisableLog()

	require.True(t, traceEnabled())

	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	block, err := New(Config{Key: key})
	require.NoError(t, err)
	block.EncryptBlock(mustBlock(t, "00112233445566778899aabbccddeeff"))

	out := buf.String()
	require.Contains(t, out, "Expanded key schedule")
	require.Contains(t, out, "round 0: 00102030405060708090a0b0c0d0e0f0")
	require.Contains(t, out, "round 10: 69c4e0d86a7b0430d8cdb78070b4c55a")
	require.NotContains(t, out, "000102030405060708090a0b0c0d0e0f")
}

// TestDebugLogging checks that the debug level reports the schedule
// fingerprint but not the per-round states.
func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := btclog.NewSLogger(btclog.NewDefaultHandler(&buf))
	logger.SetLevel(btclog.LevelDebug)

	UseLogger(logger)
	defer DisableLog()

	require.True(t, debugEnabled())
	require.False(t, traceEnabled())

	block, err := New(Config{Key: mustHex(t, "000102030405060708090a0b0c0d0e0f")})
	require.NoError(t, err)
	block.EncryptBlock(mustBlock(t, "00112233445566778899aabbccddeeff"))

	fp := block.Fingerprint()
	out := buf.String()
	require.Contains(t, out, "Expanded key schedule")
	require.Contains(t, out, "schedule_fp="+hex.EncodeToString(fp[:]))
	require.NotContains(t, out, "round 0:")
}

func TestLoggingDisabledByDefault(t *testing.T) {
	DisableLog()
	require.False(t, debugEnabled())
	require.False(t, traceEnabled())
}

func TestSpewState(t *testing.T) {
	dump := spewState(State{{0xab}}).String()
	require.True(t, strings.Contains(dump, "aes128.State"), dump)
	require.False(t, strings.HasSuffix(dump, "\n"))
}
