package gelf

import (
	"strconv"
	"strings"
)

// RFC 5424 severity levels
const (
	LOG_EMERG   = 0
	LOG_ALERT   = 1
	LOG_CRIT    = 2
	LOG_ERR     = 3
	LOG_WARNING = 4
	LOG_NOTICE  = 5
	LOG_INFO    = 6
	LOG_DEBUG   = 7
)

// severityTable maps severity words and single-letter abbreviations
// to RFC 5424 integers. Built once, read-only after that, so it is
// safe for concurrent lookups without locking.
//
// The Logstash plugin this mirrors assigned "e" twice, to both error
// and emergency; here "e" means error, and a test pins that.
var severityTable = map[string]int{
	"debug":         LOG_DEBUG,
	"d":             LOG_DEBUG,
	"info":          LOG_INFO,
	"i":             LOG_INFO,
	"informational": LOG_INFO,
	"notice":        LOG_NOTICE,
	"n":             LOG_NOTICE,
	"warn":          LOG_WARNING,
	"w":             LOG_WARNING,
	"warning":       LOG_WARNING,
	"error":         LOG_ERR,
	"e":             LOG_ERR,
	"critical":      LOG_CRIT,
	"c":             LOG_CRIT,
	"alert":         LOG_ALERT,
	"a":             LOG_ALERT,
	"emergency":     LOG_EMERG,
}

// severityOf converts a resolved level string to an integer severity.
// Unknown words fall through to numeric coercion, which yields 0 for
// strings with no numeric prefix. Degrading to 0 is policy, not a bug.
func severityOf(level string) int {
	if sev, known := severityTable[strings.ToLower(level)]; known {
		return sev
	}
	return numericPrefix(level)
}

// numericPrefix parses the leading digits of a string, the way Ruby's
// to_i does: "42xyz" is 42, "xyz" is 0.
func numericPrefix(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
