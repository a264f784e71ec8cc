package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfTestCmdRunEReportsSuccess(t *testing.T) {
	err := selfTestCmd.RunE(selfTestCmd, nil)
	require.NoError(t, err)
}

func TestRootCmdHasSelfTestSubcommand(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"selftest"})
	require.NoError(t, err)
	assert.Equal(t, selfTestCmd, cmd)
}
