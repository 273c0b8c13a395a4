// Package option loads the lexscan configuration. Every option has a
// kebab-case key used for the command line flag, the config file entry
// and, upper-cased with the LEXSCAN_ prefix, the environment variable.
package option

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/orizon-lang/lexscan/internal/lexer"
	"github.com/orizon-lang/lexscan/internal/version"
)

const (
	// Dialect selects the scanner dialect, "literals" or "keywords"
	Dialect = "dialect"

	// RetainWhitespace yields whitespace tokens
	RetainWhitespace = "retain-whitespace"

	// SkipErrors drops unrecognized input silently
	SkipErrors = "skip-errors"

	// EmitEOF yields the end of input token
	EmitEOF = "emit-eof"

	// Color selects colored output: "auto", "always" or "never"
	Color = "color"

	// Format selects the output format: "text" or "json"
	Format = "format"

	// Watch re-scans the file whenever it changes
	Watch = "watch"

	// DebugArg enables debug logging
	DebugArg = "debug"

	// ConfigFile is the path of a YAML, JSON or TOML config file
	ConfigFile = "config"

	// RequireVersion is a semver constraint the tool version must meet
	RequireVersion = "require-version"

	// EnvPrefix prefixes every environment variable
	EnvPrefix = "LEXSCAN"
)

// Environment switches understood for compatibility with the original
// scanner driver. Their presence enables them; the value is ignored.
const (
	LegacyNeedSpaces = "NEED_SPACES"
	LegacySkipErrors = "SKIP_ERRORS"
	LegacySkipEOF    = "SKIP_EOF"
)

// ErrInvalidValue is returned for option values outside their domain
var ErrInvalidValue = errors.New("invalid option value")

// ColorMode controls ANSI coloring of text output
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// OutputFormat selects how tokens are rendered
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the resolved configuration of one lexscan run
type Config struct {
	Scanner        lexer.Options
	Color          ColorMode
	Format         OutputFormat
	Watch          bool
	Debug          bool
	ConfigFile     string
	RequireVersion string
}

// EnvName returns the environment variable bound to key
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// BindEnv binds key to its environment variable
func BindEnv(vp *viper.Viper, key string) {
	if err := vp.BindEnv(key, EnvName(key)); err != nil {
		// BindEnv only fails without arguments.
		panic(err)
	}
}

// defaults holds the value of every option when nothing else sets it
var defaults = map[string]any{
	Dialect:          lexer.DialectLiterals.String(),
	RetainWhitespace: false,
	SkipErrors:       false,
	EmitEOF:          true,
	Color:            string(ColorAuto),
	Format:           string(FormatText),
	Watch:            false,
	DebugArg:         false,
	ConfigFile:       "",
	RequireVersion:   "",
}

// NewViper returns a viper instance with every option defaulted and bound
// to its environment variable.
func NewViper() *viper.Viper {
	vp := viper.New()
	for key, value := range defaults {
		vp.SetDefault(key, value)
		BindEnv(vp, key)
	}
	return vp
}

// InitFlags registers every option on flags and binds the flags into vp.
func InitFlags(flags *pflag.FlagSet, vp *viper.Viper) {
	flags.String(Dialect, defaults[Dialect].(string), "Scanner dialect (literals, keywords)")
	flags.Bool(RetainWhitespace, false, "Emit whitespace tokens")
	flags.Bool(SkipErrors, false, "Silently skip unrecognized characters")
	flags.Bool(EmitEOF, true, "Emit an end of input token")
	flags.String(Color, string(ColorAuto), "Color output (auto, always, never)")
	flags.String(Format, string(FormatText), "Output format (text, json)")
	flags.Bool(Watch, false, "Re-scan the file whenever it changes")
	flags.BoolP(DebugArg, "D", false, "Enable debug logging")
	flags.String(ConfigFile, "", "Configuration file (YAML, JSON or TOML)")
	flags.String(RequireVersion, "", "Fail unless the tool version satisfies this semver constraint")

	if err := vp.BindPFlags(flags); err != nil {
		panic(err)
	}
}

// Load resolves the configuration. flags may be nil when no command line
// is involved. Precedence, highest first: explicitly set flags,
// environment (LEXSCAN_* then the legacy switches), config file, defaults.
func Load(vp *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if path := vp.GetString(ConfigFile); path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	c := &Config{
		Color:          ColorMode(strings.ToLower(vp.GetString(Color))),
		Format:         OutputFormat(strings.ToLower(vp.GetString(Format))),
		Watch:          vp.GetBool(Watch),
		Debug:          vp.GetBool(DebugArg),
		ConfigFile:     vp.GetString(ConfigFile),
		RequireVersion: vp.GetString(RequireVersion),
	}

	dialect, err := lexer.ParseDialect(vp.GetString(Dialect))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, Dialect, err)
	}
	c.Scanner = lexer.Options{
		Dialect:          dialect,
		RetainWhitespace: vp.GetBool(RetainWhitespace),
		SkipErrors:       vp.GetBool(SkipErrors),
		EmitEndOfInput:   vp.GetBool(EmitEOF),
	}
	applyLegacyEnv(&c.Scanner, flags)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyLegacyEnv honors NEED_SPACES, SKIP_ERRORS and SKIP_EOF unless the
// same option was given as a flag or through its LEXSCAN_ variable.
func applyLegacyEnv(opts *lexer.Options, flags *pflag.FlagSet) {
	overridable := func(key string) bool {
		if flags != nil && flags.Changed(key) {
			return false
		}
		_, set := os.LookupEnv(EnvName(key))
		return !set
	}

	if _, ok := os.LookupEnv(LegacyNeedSpaces); ok && overridable(RetainWhitespace) {
		opts.RetainWhitespace = true
	}
	if _, ok := os.LookupEnv(LegacySkipErrors); ok && overridable(SkipErrors) {
		opts.SkipErrors = true
	}
	if _, ok := os.LookupEnv(LegacySkipEOF); ok && overridable(EmitEOF) {
		opts.EmitEndOfInput = false
	}
}

// Validate checks the values that viper cannot type-check
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %s: %q", ErrInvalidValue, Color, c.Color)
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %s: %q", ErrInvalidValue, Format, c.Format)
	}

	if err := version.Require(c.RequireVersion); err != nil {
		return fmt.Errorf("%s: %w", RequireVersion, err)
	}
	return nil
}
