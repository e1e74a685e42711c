package envutil

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func String(name, def string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

func Int(name string, def int) int {
	return ParseInt(os.Getenv(name), def)
}

func Bool(name string, def bool) bool {
	return ParseBool(os.Getenv(name), def)
}

// Seconds reads an integer number of seconds.
func Seconds(name string, def time.Duration) time.Duration {
	return ParseSeconds(os.Getenv(name), def)
}

// List splits a comma separated value, dropping blanks.
func List(name string, def []string) []string {
	return ParseList(os.Getenv(name), def)
}

// The Parse helpers apply the same rules to values from other sources,
// returning def for blank or malformed input.

func ParseInt(raw string, def int) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func ParseFloat(raw string, def float64) float64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func ParseBool(raw string, def bool) bool {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func ParseSeconds(raw string, def time.Duration) time.Duration {
	v := strings.TrimSpace(raw)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return def
	}
	return time.Duration(i) * time.Second
}

func ParseList(raw string, def []string) []string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
