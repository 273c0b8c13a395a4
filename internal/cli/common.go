// Package cli holds the pieces shared by the lexscan commands: version
// output, exit helpers and the scan driver.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/orizon-lang/lexscan/internal/logging"
	"github.com/orizon-lang/lexscan/internal/logging/logfields"
	"github.com/orizon-lang/lexscan/internal/version"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "cli")

// PrintVersion prints version information in a consistent format
func PrintVersion(w io.Writer, toolName string, jsonOutput bool) error {
	info := version.Get()

	if _, err := version.Semver(); err != nil {
		log.WithError(err).WithField(logfields.Version, info.Version).Warn("Build version is not a semantic version")
	}

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         toolName,
			"version_info": info,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "%s v%s\n", toolName, info.Version)
	fmt.Fprintf(w, "Build Date: %s\n", info.BuildDate)
	if info.CommitSHA != "unknown" && info.CommitSHA != "" {
		fmt.Fprintf(w, "Commit: %s\n", info.CommitSHA)
	}
	fmt.Fprintf(w, "Go Version: %s\n", info.GoVersion)
	_, err := fmt.Fprintf(w, "Platform: %s/%s\n", info.Platform, info.Arch)
	return err
}

// ExitWithError prints an error message and exits with code 1
func ExitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
