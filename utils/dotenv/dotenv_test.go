package dotenv

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeEnvDefaultsToDev(t *testing.T) {
	prev, had := os.LookupEnv("BLOGMUX_ENV")
	os.Unsetenv("BLOGMUX_ENV")
	defer func() {
		if had {
			os.Setenv("BLOGMUX_ENV", prev)
		}
	}()

	assert.Equal(t, DevEnv, RuntimeEnv())
}

func TestLoadDotEnvsInTestsFindsModuleRoot(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	require.NoError(t, LoadDotEnvsInTests())
	assert.Equal(t, "test-secret", os.Getenv("JWT_SECRET"))
}
