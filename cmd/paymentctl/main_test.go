package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestNormalizeCommand(t *testing.T) {
	out := run(t, "", "normalize", "024 123 4567")
	assert.Contains(t, out, "normalized: +233241234567")
	assert.Contains(t, out, "account:    233241234567")
	assert.Contains(t, out, "payable:    yes")

	out = run(t, "", "normalize", "12345")
	assert.Contains(t, out, "payable:    no")
}

func TestInterpretCommand(t *testing.T) {
	out := run(t, `{"message":{"description":"Transaction declined"},"transactionId":"TX9"}`, "interpret", "-")
	assert.Contains(t, out, "verdict:    failure")
	assert.Contains(t, out, "reason:     Transaction declined")
	assert.Contains(t, out, "references: [TX9]")

	out = run(t, `not json`, "interpret")
	assert.Contains(t, out, "verdict:    inconclusive")
	assert.NotContains(t, out, "references:")
}

func TestVerifyCommand_MockGateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("REGISTRATION_STORE", "memory")
	t.Setenv("NOTIFIER", "log")

	out := run(t, "", "verify", "TX1")
	assert.Contains(t, out, "verdict:    success")
}
