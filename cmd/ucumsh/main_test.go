package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func runTranscript(t *testing.T, input string) string {
	t.Helper()
	cmd := rootCmd
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader(input))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestReplTranscriptAddition(t *testing.T) {
	out := runTranscript(t, "1 kg.m/s2 + 5 N\n")
	snaps.MatchSnapshot(t, out)
}

func TestReplTranscriptMismatchReportsErrorAndContinues(t *testing.T) {
	out := runTranscript(t, "10 kg.m/s + 5 N\n1 m * 1 m\n")
	snaps.MatchSnapshot(t, out)
}

func TestReplTranscriptBlankLineIsSkipped(t *testing.T) {
	out := runTranscript(t, "\n1 N\n")
	snaps.MatchSnapshot(t, out)
}

func TestReplTranscriptAnnotatesDimension(t *testing.T) {
	out := runTranscript(t, "1 N\n")
	require.Contains(t, out, "(force)")
}

func TestReplTranscriptContextDirective(t *testing.T) {
	out := runTranscript(t, ":ctx replforce %.1[1]f %[2]s\n:use replforce\n6 N\n")
	require.Contains(t, out, "6.0 N")
	require.NotContains(t, out, "(force)")
}

func TestReplTranscriptUnknownContextIsAnError(t *testing.T) {
	out := runTranscript(t, ":use nosuch\n")
	require.Contains(t, out, "error:")
}
