package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Name is the program name shown in window titles and log prefixes.
const Name = "sector"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Title formats a window title: "sector (dev)" or, with a status, "sector: 60 fps".
func Title(status string) string {
	if status == "" {
		return Name + " (" + Short() + ")"
	}
	return Name + ": " + status
}
