// Package bootstrap provides common initialization utilities for services
// embedding fault-lib.
//
// It consolidates repeated startup logic across the family:
//   - Logger setup with file rotation
//   - Message locale table installation
//
// Example usage:
//
//	func main() {
//	    cfg := &Config{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := bootstrap.InitLogger(cfg.Log); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := bootstrap.InitMessages(cfg.Messages); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package bootstrap
