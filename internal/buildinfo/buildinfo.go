package buildinfo

// Valores inyectados con -ldflags al compilar.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
