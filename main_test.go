package main

import (
	"bytes"
	"testing"

	"github.com/dawnzzz/simple-bag/config"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(&out))
	require.Equal(t, "Bag: apple,banana,orange\n=> has 3 items.\n", out.String())
}

func TestRunConfigured(t *testing.T) {
	old := *config.Properties
	t.Cleanup(func() { *config.Properties = old })

	config.Properties.First = "pear"
	config.Properties.Batch = nil

	var out bytes.Buffer
	require.NoError(t, run(&out))
	require.Equal(t, "Bag: pear\n=> has 1 items.\n", out.String())
}
