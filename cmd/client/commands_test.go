package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/memclip/internal/app"
	"github.com/MKhiriev/memclip/models"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd(models.NewAppBuildInfo("v0.3.0", "2026-05-01", "abc123"))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Build version: v0.3.0")
	assert.Contains(t, stdout, "Build date: 2026-05-01")
	assert.Contains(t, stdout, "Build commit: abc123")
}

func TestJoinCmd_InvalidTicket(t *testing.T) {
	_, stderr, err := execute(t, "join", "not-a-ticket")

	require.ErrorIs(t, err, models.ErrInvalidTicket)
	assert.Contains(t, stderr, app.MsgInvalidTicket)
}

func TestJoinCmd_RequiresTicket(t *testing.T) {
	_, _, err := execute(t, "join")
	assert.Error(t, err)
}

func TestStartCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "start", "extra")
	assert.Error(t, err)
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd(models.AppBuildInfo{})

	for _, name := range []string{"hub", "poll-interval", "wait-timeout", "log-level", "log-file", "metrics-address", "tui", "config"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}
