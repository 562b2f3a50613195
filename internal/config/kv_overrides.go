package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
// Unknown keys and unparsable values are skipped.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "max_entries":
			if n, err := strconv.ParseUint(val, 10, 0); err == nil {
				cfg.MaxEntries = uint(n)
			}
		case "selectable":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Selectable = b
			}
		case "follow":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Follow = b
			}
		case "wrap":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Wrap = b
			}
		case "log_path":
			cfg.LogPath = val
		case "log_level":
			cfg.LogLevel = val
		case "theme.highlight_fg":
			cfg.Theme.HighlightFG = val
		case "theme.highlight_bg":
			cfg.Theme.HighlightBG = val
		case "theme.dim_fg":
			cfg.Theme.DimFG = val
		}
	}
	return cfg
}
