package classify

import "strings"

const utmPrefix = "utm_"

// Level names the rule table that produced a classification.
type Level int

const (
	LevelNone Level = iota
	LevelExact
	LevelUTMPrefix
	LevelHashKey
	LevelHashPrefix
	LevelKeyword
	LevelGenericHint
)

func (l Level) String() string {
	switch l {
	case LevelExact:
		return "exact key"
	case LevelUTMPrefix:
		return "utm_ prefix"
	case LevelHashKey:
		return "hash key"
	case LevelHashPrefix:
		return "hash prefix"
	case LevelKeyword:
		return "keyword pattern"
	case LevelGenericHint:
		return "generic hint"
	default:
		return "no match"
	}
}

// Match describes how a key was classified.
type Match struct {
	Key      string
	Category Category
	Level    Level
	Rule     string // the key, prefix, or pattern that matched
}

// Classify returns the tracking category for a query-parameter key, or None
// if the parameter should be left untouched.
func Classify(key string) Category {
	return Explain(key).Category
}

// Explain classifies key and reports which rule decided the outcome.
// Rules are consulted in a fixed precedence order; the first match wins.
func Explain(key string) Match {
	m := Match{Key: key}
	if key == "" {
		return m
	}
	k := strings.ToLower(key)

	if c, ok := lookup[k]; ok {
		return hit(m, c, LevelExact, k)
	}
	if strings.HasPrefix(k, utmPrefix) {
		return hit(m, Generic, LevelUTMPrefix, utmPrefix)
	}
	if hashSet[k] {
		return hit(m, Hash, LevelHashKey, k)
	}
	for _, p := range hashPrefixes {
		if strings.HasPrefix(k, p) {
			return hit(m, Hash, LevelHashPrefix, p)
		}
	}
	for _, kp := range keywordPatterns {
		if kp.re.MatchString(k) {
			return hit(m, kp.category, LevelKeyword, kp.re.String())
		}
	}
	for _, re := range genericHints {
		if re.MatchString(k) {
			return hit(m, Generic, LevelGenericHint, re.String())
		}
	}
	return m
}

func hit(m Match, c Category, l Level, rule string) Match {
	m.Category = c
	m.Level = l
	m.Rule = rule
	return m
}
