// Package config provides the configuration types and loading utilities for
// GGA family services that embed fault-lib.
//
// Usage:
//
//	import "github.com/Goden-Gun/fault-lib/pkg/config"
//
//	type MyConfig struct {
//	    Log      config.LogConfig      `yaml:"log" mapstructure:"log"`
//	    Messages config.MessagesConfig `yaml:"messages" mapstructure:"messages"`
//	    // ... service-specific configs
//	}
//
//	func LoadMyConfig() (*MyConfig, error) {
//	    cfg := &MyConfig{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        return nil, err
//	    }
//	    cfg.Messages.ApplyDefaults()
//	    return cfg, nil
//	}
package config
