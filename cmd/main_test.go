package main

import (
	"bytes"
	"errors"
	"library/internal/lending"
	"library/pkg/serrors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"serve"}, want: nil},
		{args: []string{"-c", "prod.yml", "serve"}, want: []string{"-c", "prod.yml"}},
		{args: []string{"borrow", "--user", "1", "--config", "a.yml"}, want: []string{"-c", "a.yml"}},
		{args: []string{"-c=b.yml", "migrate"}, want: []string{"-c=b.yml"}},
		{args: []string{"--config=c.yml"}, want: []string{"-c=c.yml"}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, configArgs(tt.args), tt.args)
	}
}

func TestReportOrder(t *testing.T) {
	newCmd := func() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
		var out, errOut bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)

		return cmd, &out, &errOut
	}

	cmd, out, _ := newCmd()
	require.NoError(t, reportOrder(cmd, nil))
	require.Equal(t, "ok\n", out.String())

	cmd, _, errOut := newCmd()
	err := reportOrder(cmd, serrors.With(lending.ErrTooManyItems, "can only borrow 5 items at a time"))
	require.Equal(t, orderFailedExitCode, err)
	require.Equal(t, "TOO_MANY_ITEMS: can only borrow 5 items at a time\n", errOut.String())

	cmd, _, _ = newCmd()
	boom := errors.New("boom")
	require.Equal(t, boom, reportOrder(cmd, boom))
}
