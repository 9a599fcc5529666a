// internal/version/version.go
package version

// Version is the released version string, overridable at build time
// with -ldflags "-X seqcat/internal/version.Version=...".
var Version = "0.2.0"
