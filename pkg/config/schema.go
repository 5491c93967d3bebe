package config

import (
	"fmt"
	"strings"
)

// Schema selects which configuration profile a Settings value follows. The
// two profiles differ in recognized config keys, accepted command-line flags
// and the quoting rules used when the command is rendered.
type Schema int

const (
	// SchemaGeneric passes unrecognized flags through to the analyzer and
	// reads extra_args, log_file and enable_logging from the config file.
	SchemaGeneric Schema = iota
	// SchemaNamed only accepts --enable=, --template= and --premium= and
	// reads the matching enable, template and premium config keys.
	SchemaNamed
)

// SchemaEnv names the environment variable that selects the profile.
const SchemaEnv = "RUN_CPPCHECK_SCHEMA"

func (s Schema) String() string {
	switch s {
	case SchemaGeneric:
		return "generic"
	case SchemaNamed:
		return "named"
	default:
		return fmt.Sprintf("Schema(%d)", int(s))
	}
}

// ParseSchema maps a profile name to a Schema. The empty string selects
// SchemaGeneric.
func ParseSchema(name string) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "generic", "a":
		return SchemaGeneric, nil
	case "named", "b":
		return SchemaNamed, nil
	default:
		return 0, fmt.Errorf("unknown schema %q (expected generic|named)", name)
	}
}
