package config

// LogConfig configures the shared logrus backend.
type LogConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	Level        string `yaml:"level" mapstructure:"level"`
	ReportCaller bool   `yaml:"report_caller" mapstructure:"report_caller"`
}

// MessagesConfig configures friendly-message rendering.
type MessagesConfig struct {
	// Locale selects the translation table, e.g. "de". Empty means the
	// base catalog.
	Locale string `yaml:"locale" mapstructure:"locale"`
	// TableDir is the directory holding <locale>.yaml translation tables.
	TableDir string `yaml:"table_dir" mapstructure:"table_dir"`
}
