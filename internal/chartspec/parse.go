package chartspec

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ParseConfig extracts and validates a dashboard configuration from raw
// model output. It accepts either a bare JSON object or a fenced code
// block; anything else is a parse error, never an empty result.
func ParseConfig(response string) (DashboardConfig, error) {
	candidate := strings.TrimSpace(response)
	if m := fencedJSON.FindStringSubmatch(candidate); m != nil {
		candidate = strings.TrimSpace(m[1])
	}

	var cfg DashboardConfig
	if err := json.Unmarshal([]byte(candidate), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}
