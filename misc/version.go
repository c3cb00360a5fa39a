// Package misc keeps build time information.
package misc

// Set by linker flags, see Taskfile.
var (
	appName = "sylgen"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
