// ABOUTME: Version information for the tape tools
// ABOUTME: Shared by oraotap and tapeplay for --version output
package version

import "fmt"

const (
	// Version is the release version
	Version = "0.3.0"
	// Product is the tool suite name
	Product = "oraotap"
	// Manufacturer is the maintaining project
	Manufacturer = "orao-retro"
)

// String formats the version line for a command
func String(command string) string {
	return fmt.Sprintf("%s %s (%s %s)", command, Version, Manufacturer, Product)
}
