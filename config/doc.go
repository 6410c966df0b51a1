// Package config provides configuration loading and validation for devserve.
//
// The package handles YAML configuration files, .env files, environment
// variables, and CLI flags with automatic merging and validation using
// go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (DEVSERVE_ prefix), including values loaded
//     from a .env file in the working directory
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with DEVSERVE_ prefix:
//   - server.host → DEVSERVE_SERVER_HOST
//   - server.port → DEVSERVE_SERVER_PORT
//   - site.root → DEVSERVE_SITE_ROOT
//
// # Configuration Structure
//
// The Config struct contains:
//   - Server: bind host (default: all interfaces) and port (default: 8080)
//   - Site: content root directory and fallback document name
//   - CORS: cross-origin resource sharing settings
//   - Log: logging level and format
//
// An empty site root resolves to the directory containing the server
// executable; see SiteConfig.ResolveRoot.
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Fallback document name must be non-empty
//   - Log level must be debug, info, warn, or error
//   - Log format must be text or json
package config
