// Package configs holds the environment profiles shipped with saucecheck.
package configs

import "embed"

// FS contains every *.config.yaml profile in this directory.
//
//go:embed *.config.yaml
var FS embed.FS
