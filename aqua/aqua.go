// Package aqua tracks the optional native macOS rendering driver. A driver
// registers itself at startup; everything else in this module treats its
// absence as a normal state and falls back to plain Fyne rendering.
package aqua

import (
	"github.com/Masterminds/semver/v3"
)

// Version identifies this release of the library.
var Version = "0.1.0"

// minInsetViewVersion is the oldest driver release that renders inset view
// margins itself. Older drivers leave margin handling to the table widget.
const minInsetViewVersion = ">= 3.0.0"

// Driver describes a native rendering driver. Implementations live outside
// this module; the interface is the only coupling point.
type Driver interface {
	// Name identifies the driver.
	Name() string
	// DriverVersion reports the driver release as a semantic version.
	DriverVersion() string
}

var current Driver

// Register installs the native driver. Passing nil removes it.
func Register(d Driver) {
	current = d
}

// Current returns the registered driver, or nil.
func Current() Driver {
	return current
}

// Installed reports whether a native driver is registered.
func Installed() bool {
	return current != nil
}

// InsetViewSupported reports whether the registered driver renders inset
// view margins natively. Drivers with unparsable versions are treated as
// not supporting it.
func InsetViewSupported() bool {
	if current == nil {
		return false
	}
	c, err := semver.NewConstraint(minInsetViewVersion)
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(current.DriverVersion())
	if err != nil {
		return false
	}
	return c.Check(v)
}
