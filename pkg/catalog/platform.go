// Package catalog loads application cheat-sheet data from a directory
// tree of <language>/<app>/ entries, each holding an app.toml (or
// app.yml) config plus one CSV sheet per platform.
package catalog

// Platform identifies which keyboard layout a sheet documents.
type Platform string

const (
	PlatformMac Platform = "mac"
	PlatformPC  Platform = "pc"
)

// AllPlatforms returns the supported platforms in display order.
func AllPlatforms() []Platform {
	return []Platform{PlatformMac, PlatformPC}
}

// String returns the platform name as used in config tables and URLs.
func (p Platform) String() string { return string(p) }

// Valid reports whether p is a supported platform.
func (p Platform) Valid() bool {
	return p == PlatformMac || p == PlatformPC
}

// Language is the content language of a sheet directory, e.g. "en".
type Language string

// LanguageEN is the default catalog language.
const LanguageEN Language = "en"

func (l Language) String() string { return string(l) }
