package utils

import (
	"runtime/debug"
)

const (
	unknownVersion       = "unknown"
	developmentVersion   = "(devel)"
	vcsRevisionKey       = "vcs.revision"
	vcsModifiedKey       = "vcs.modified"
	shortRevisionLength  = 12
	modifiedVersionLabel = "-dirty"
)

// applicationVersion is set at link time with
// -ldflags "-X github.com/tyemirov/treedoc/internal/utils.applicationVersion=v1.2.3".
var applicationVersion string

// GetApplicationVersion reports the linked version, then the module version
// from build info, then the VCS revision recorded by the Go toolchain.
// The working directory is never consulted because it usually belongs to the
// exported project rather than to treedoc.
func GetApplicationVersion() string {
	if applicationVersion != "" {
		return applicationVersion
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}
	return revisionFromSettings(buildInfo.Settings)
}

func revisionFromSettings(settings []debug.BuildSetting) string {
	revision := ""
	modified := false
	for _, setting := range settings {
		switch setting.Key {
		case vcsRevisionKey:
			revision = setting.Value
		case vcsModifiedKey:
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return unknownVersion
	}
	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}
	if modified {
		revision += modifiedVersionLabel
	}
	return revision
}
