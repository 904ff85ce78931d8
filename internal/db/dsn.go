package db

import (
	"regexp"
	"strings"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// IsPostgresDSN reports whether the DSN targets postgres: either URL style
// (postgres://...) or a lib/pq key=value list. Anything else is treated as
// a sqlite file path.
func IsPostgresDSN(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://") {
		return true
	}
	return kvPairRegex.MatchString(s)
}

// NormalizePostgresDSN trims quotes and whitespace and, if given key=value
// form, returns it cleaned with sslmode defaulted to disable when missing.
func NormalizePostgresDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	if !kvPairRegex.MatchString(s) {
		return s
	}
	// Collapse multiple spaces
	fields := strings.Fields(s)
	cleaned := strings.Join(fields, " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// NormalizeSQLiteDSN ensures the busy timeout and foreign key pragmas are
// set on the connection string. The busy timeout is what lets concurrent
// writers queue on the single data file instead of failing immediately;
// foreign keys make the invoice_lines cascade effective.
func NormalizeSQLiteDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		s = "file:invoices.db"
	}
	sep := "?"
	if strings.Contains(s, "?") {
		sep = "&"
	}
	if !strings.Contains(s, "_busy_timeout=") {
		s += sep + "_busy_timeout=5000"
		sep = "&"
	}
	if !strings.Contains(s, "_foreign_keys=") {
		s += sep + "_foreign_keys=on"
	}
	return s
}
