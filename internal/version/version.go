package version

// Set via -ldflags at build time.
var (
	AppName   = "rolehub"
	Version   = "dev"
	BuildDate = ""
)
