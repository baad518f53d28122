// Released under an MIT license. See LICENSE.

// Package boot embeds the prelude evaluated into every fresh global
// environment.
package boot

import (
	_ "embed"
)

//go:embed boot.scm
var script string //nolint:gochecknoglobals

// Script returns the prelude source.
func Script() string {
	return script
}
