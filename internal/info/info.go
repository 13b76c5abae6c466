package info

import "runtime/debug"

// Version is the application version, set at build time with ldflags.
var Version = ""

func init() {
	if Version != "" {
		return
	}

	// Imported as a library: use the module version from the build info.
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, d := range bi.Deps {
			if d.Path == "github.com/slok/delorean" {
				Version = d.Version
				return
			}
		}
	}

	Version = "dev"
}
