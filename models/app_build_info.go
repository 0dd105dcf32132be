package models

import "fmt"

// notAvailable is printed for build metadata the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the version metadata stamped into a binary with
// -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills unset values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// String renders the three lines printed on startup and by "build-info".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
