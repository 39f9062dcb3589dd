package bootstrap

import (
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/fault-lib/pkg/config"
	"github.com/Goden-Gun/fault-lib/pkg/messages"
)

// InitMessages installs the locale table selected by cfg. With no locale
// configured the base message catalog stays active. Must run before the
// first fault is constructed; the active table is not swappable afterwards.
func InitMessages(cfg config.MessagesConfig) error {
	cfg.ApplyDefaults()

	if cfg.Locale == "" {
		messages.UseLocale(nil)
		return nil
	}

	path := filepath.Join(cfg.TableDir, cfg.Locale+".yaml")
	table, err := messages.LoadLocaleFile(path)
	if err != nil {
		return fmt.Errorf("init messages: %w", err)
	}

	messages.UseLocale(table)
	log.WithField("locale", cfg.Locale).Info("message locale installed")
	return nil
}
