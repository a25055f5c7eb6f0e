// ABOUTME: Version information
// ABOUTME: Product identity reported by the command line tools
package version

const (
	Version      = "0.1.0"
	Product      = "pulse-simple"
	Manufacturer = "Resonate"
)
