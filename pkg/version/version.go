package version

import (
	"runtime/debug"
	"strings"

	"github.com/kpauljoseph/cardflip/pkg/models"
)

const (
	versionPlaceholder = "VERSION_PLACEHOLDER"
	commitPlaceholder  = "COMMIT_PLACEHOLDER"
)

var (
	// These values are injected during build - DO NOT MODIFY
	Version   = versionPlaceholder
	CommitSHA = commitPlaceholder
)

// Current is the injected version. Builds made with plain go install fall
// back to the module version recorded in the binary, or "dev".
func Current() string {
	if Version != versionPlaceholder {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func commit() string {
	if CommitSHA != commitPlaceholder {
		return CommitSHA
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

func GetVersionInfo() string {
	return "CardFlip " + Current()
}

func GetDetailedVersionInfo() string {
	levels := make([]string, len(models.Progression))
	for i, t := range models.Progression {
		levels[i] = t.String()
	}

	return "CardFlip\n" +
		"Version:  " + Current() + "\n" +
		"Commit:   " + commit() + "\n" +
		"Levels:   " + strings.Join(levels, " -> ") + "\n"
}
