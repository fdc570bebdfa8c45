// Package levels embeds the shipped TMX maps.
package levels

import "embed"

//go:embed *.tmx
var FS embed.FS

// Paths lists the playable levels in order.
var Paths = []string{
	"level1.tmx",
}
