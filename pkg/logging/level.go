package logging

import (
	"strings"

	"go.llib.dev/sorters/pkg/errorkit"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

type Level string

func (ll Level) String() string { return string(ll) }

const ErrUnknownLevel errorkit.Error = "unknown logging level"

var levelAliases = map[string]Level{
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warn":     LevelWarn,
	"warning":  LevelWarn,
	"error":    LevelError,
	"fatal":    LevelFatal,
	"critical": LevelFatal,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
	"f": LevelFatal,
	"c": LevelFatal,
}

// ParseLevel turns a level name, or its one letter alias, into a Level.
func ParseLevel(raw string) (Level, error) {
	if level, ok := levelAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return level, nil
	}
	return "", ErrUnknownLevel.F("%q", raw)
}

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,

	*new(Level): 1, // zero Level value is considered as LevelInfo
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}
