// Package configs embeds the default JSON configuration shipped with the binaries.
package configs

import "embed"

//go:embed *.json
var FS embed.FS
