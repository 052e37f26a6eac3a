package log

import (
	"github.com/rs/zerolog"

	"github.com/worldmesh/replicon/types"
)

// Loggable is satisfied by the replication rule registry.
type Loggable interface {
	Infos() []types.RuleInfo
}

func loadRuleIntoArrayLogger(rule types.RuleInfo, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Uint64("ordinal", rule.Ordinal)
	dictLogger = dictLogger.Str("component_name", rule.Name)
	dictLogger = dictLogger.Int("component_id", int(rule.ComponentID))
	dictLogger = dictLogger.Int("excluded_id", int(rule.ExcludedID))
	return arrayLogger.Dict(dictLogger)
}

func loadRulesToEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	rules := target.Infos()
	zeroLoggerEvent.Int("total_rules", len(rules))
	arrayLogger := zerolog.Arr()
	for _, rule := range rules {
		arrayLogger = loadRuleIntoArrayLogger(rule, arrayLogger)
	}
	return zeroLoggerEvent.Array("rules", arrayLogger)
}

// Rules logs every registered replication rule, in ordinal order.
func Rules(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadRulesToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}
