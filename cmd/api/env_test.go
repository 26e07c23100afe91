package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "CALCULATOR_TEST_FROM_FILE=file\nCALCULATOR_TEST_PRESET=file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CALCULATOR_TEST_PRESET", "process")
	t.Setenv("CALCULATOR_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("CALCULATOR_TEST_FROM_FILE"))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "file", os.Getenv("CALCULATOR_TEST_FROM_FILE"))
	assert.Equal(t, "process", os.Getenv("CALCULATOR_TEST_PRESET"))
}
