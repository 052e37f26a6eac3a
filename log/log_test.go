package log_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/worldmesh/replicon/log"
	"github.com/worldmesh/replicon/types"
)

type ruleList []types.RuleInfo

func (r ruleList) Infos() []types.RuleInfo { return r }

func TestRulesLogger(t *testing.T) {
	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)

	rules := ruleList{
		{Ordinal: 0, Name: "position", ComponentID: 2, ExcludedID: 3},
		{Ordinal: 1, Name: "owner", ComponentID: 4, ExcludedID: 5},
	}
	log.Rules(&bufLogger, rules, zerolog.InfoLevel)

	jsonRulesString := `{
		"level":"info",
		"total_rules":2,
		"rules":
			[
				{
					"ordinal":0,
					"component_name":"position",
					"component_id":2,
					"excluded_id":3
				},
				{
					"ordinal":1,
					"component_name":"owner",
					"component_id":4,
					"excluded_id":5
				}
			]
	}
`
	require.JSONEq(t, jsonRulesString, buf.String())
}

func TestRulesLoggerEmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)

	log.Rules(&bufLogger, ruleList{}, zerolog.DebugLevel)

	require.JSONEq(t, `{"level":"debug","total_rules":0,"rules":[]}`, buf.String())
}
