package version

// Version is the semantic version of this build. Overridden at release time
// via -ldflags.
var Version = "1.0.0-dev"
