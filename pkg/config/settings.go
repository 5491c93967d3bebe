// Package config resolves the settings for one run-cppcheck invocation from
// command-line arguments and a JSON config file.
package config

const (
	DefaultCppcheck   = "cppcheck"
	DefaultConfigName = "run-cppcheck-config.json"
)

// origin records which fields were set on the command line, so the config
// file only fills the remaining ones.
type origin uint8

const (
	fromArgsEnable origin = 1 << iota
	fromArgsTemplate
	fromArgsPremium
)

// Settings holds the resolved values driving command construction.
type Settings struct {
	Schema Schema

	Cppcheck       string
	Filename       string
	ProjectFile    string
	LogFile        string
	ConfigPath     string
	LoggingEnabled bool
	PrintVersion   bool

	// Args holds flags passed through from the command line; ConfigArgs holds
	// extra_args from the config file. Only used by SchemaGeneric.
	Args       []string
	ConfigArgs []string

	// Only used by SchemaNamed.
	Enable   string
	Template string
	Premium  string

	setByArgs origin
}

// NewSettings returns Settings with defaults for the given schema.
func NewSettings(schema Schema) *Settings {
	return &Settings{
		Schema:         schema,
		Cppcheck:       DefaultCppcheck,
		LoggingEnabled: true,
	}
}

// ExtraArgs returns the analyzer arguments in render order: config file
// arguments first, then command-line arguments.
func (s *Settings) ExtraArgs() []string {
	args := make([]string, 0, len(s.ConfigArgs)+len(s.Args))
	args = append(args, s.ConfigArgs...)
	return append(args, s.Args...)
}

func (s *Settings) markArgs(o origin) { s.setByArgs |= o }

func (s *Settings) isSetByArgs(o origin) bool { return s.setByArgs&o != 0 }
