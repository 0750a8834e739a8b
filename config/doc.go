// SPDX-License-Identifier: MIT

// Package config loads runtime settings for the analysis engine and the
// nested controller from YAML files and SIC_* environment variables, builds
// the zap logger, and reads context sets from YAML.
package config
