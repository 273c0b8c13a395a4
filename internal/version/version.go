// Package version holds the build version of the lexscan tools and checks
// version constraints against it.
package version

import (
	"errors"
	"fmt"
	"runtime"

	semver "github.com/Masterminds/semver/v3"
)

// Version information for all CLI tools
var (
	Version   = "0.3.0"
	BuildDate = "2026-10-18"
	CommitSHA = "unknown" // Will be set during build
)

// ErrUnsatisfied is returned when the running version does not meet a
// required constraint.
var ErrUnsatisfied = errors.New("version constraint not satisfied")

// Info contains version and build information
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// Get returns structured version information
func Get() *Info {
	return &Info{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Semver parses Version. A malformed build-time version is reported
// rather than silently treated as 0.0.0.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", Version, err)
	}
	return v, nil
}

// ParseConstraint validates a constraint expression such as ">= 0.2, < 1".
func ParseConstraint(expr string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", expr, err)
	}
	return c, nil
}

// Require checks the running version against a constraint expression.
// An empty expression always passes.
func Require(expr string) error {
	if expr == "" {
		return nil
	}

	c, err := ParseConstraint(expr)
	if err != nil {
		return err
	}

	v, err := Semver()
	if err != nil {
		return err
	}

	if ok, errs := c.Validate(v); !ok {
		if len(errs) > 0 {
			return fmt.Errorf("%w: %v", ErrUnsatisfied, errs[0])
		}
		return fmt.Errorf("%w: %s does not match %q", ErrUnsatisfied, v, expr)
	}
	return nil
}
