package config

// ApplyDefaults fills unset log settings.
func (l *LogConfig) ApplyDefaults() {
	if l.Format == "" {
		l.Format = "json"
	}
	if l.Level == "" {
		l.Level = "info"
	}
}

// ApplyDefaults fills unset message settings.
func (m *MessagesConfig) ApplyDefaults() {
	if m.TableDir == "" {
		m.TableDir = "./locales"
	}
}
