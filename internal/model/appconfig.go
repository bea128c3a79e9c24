package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Calculation defaults
	DefaultCoats int    `json:"default_coats"` // used when an imported row leaves coats empty
	CatalogPath  string `json:"catalog_path"`  // paint catalog file, empty = built-in range

	// Report preferences
	Currency    string `json:"currency"`     // symbol prefixed to amounts, e.g. "£"
	ReportTitle string `json:"report_title"` // heading of exported reports

	// Logging
	LogLevel  string `json:"log_level"`  // "debug", "info", "warn", "error"
	LogFormat string `json:"log_format"` // "text", "json"
	LogColor  bool   `json:"log_color"`  // ANSI colour for text format; off so piped stderr stays plain
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultCoats: 1,
		CatalogPath:  "",
		Currency:     "£",
		ReportTitle:  "Paint Estimate",
		LogLevel:     "info",
		LogFormat:    "text",
		LogColor:     false,
	}
}

// Normalize replaces unusable values with their defaults.
func (c AppConfig) Normalize() AppConfig {
	d := DefaultAppConfig()
	if c.DefaultCoats < 1 {
		c.DefaultCoats = d.DefaultCoats
	}
	if c.ReportTitle == "" {
		c.ReportTitle = d.ReportTitle
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	return c
}
