// Package buildinfo holds the version stamped into the circos binary at
// link time:
//
//	go build -ldflags "-X github.com/matzehuels/circos/pkg/buildinfo.Version=v0.4.0 \
//	    -X github.com/matzehuels/circos/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/circos/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds report "dev".
package buildinfo

import "fmt"

// Name is the product name used in version output and HTTP headers.
const Name = "circos"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short returns "circos v0.4.0", or "circos dev (abc1234)" for a build
// without a release tag.
func Short() string {
	if Version == "dev" && Commit != "none" {
		return fmt.Sprintf("%s %s (%s)", Name, Version, Commit)
	}
	return Name + " " + Version
}

// UserAgent returns the product token sent in the server's Server header,
// e.g. "circos/v0.4.0".
func UserAgent() string {
	return Name + "/" + Version
}

// String returns the multi-line report printed by --version.
func String() string {
	return fmt.Sprintf("%s\ncommit: %s\nbuilt: %s", Short(), Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return String() + "\n"
}
