package replicon_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/worldmesh/replicon"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg := replicon.GetConfig()
	assert.Assert(t, cfg.ValidateSchemas)
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Setenv("REPLICON_VALIDATE_SCHEMAS", "false")
	cfg := replicon.GetConfig()
	assert.Assert(t, !cfg.ValidateSchemas)
}
