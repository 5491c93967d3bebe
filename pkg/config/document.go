package config

// GenericDocument describes the config file accepted by SchemaGeneric. It is
// used to publish the file format; loading goes through Load.
type GenericDocument struct {
	ProjectFile   string   `json:"project_file,omitempty" jsonschema:"description=Project file or compile_commands.json; relative paths are resolved against the config file directory"`
	Cppcheck      string   `json:"cppcheck,omitempty" jsonschema:"description=Path to the cppcheck executable,default=cppcheck"`
	LogFile       string   `json:"log_file,omitempty" jsonschema:"description=Log file path; defaults to the user state directory"`
	EnableLogging *bool    `json:"enable_logging,omitempty" jsonschema:"description=Write a record of each run to the log file,default=true"`
	ExtraArgs     []string `json:"extra_args,omitempty" jsonschema:"description=Arguments passed to cppcheck before command-line arguments"`
}

// NamedDocument describes the config file accepted by SchemaNamed.
type NamedDocument struct {
	ProjectFile string `json:"project_file,omitempty" jsonschema:"description=Project file or compile_commands.json; relative paths are resolved against the config file directory"`
	Cppcheck    string `json:"cppcheck,omitempty" jsonschema:"description=Path to the cppcheck executable,default=cppcheck"`
	Template    string `json:"template,omitempty" jsonschema:"description=Value passed to cppcheck as --template"`
	Enable      string `json:"enable,omitempty" jsonschema:"description=Value passed to cppcheck as --enable"`
	Premium     string `json:"premium,omitempty" jsonschema:"description=Value passed to cppcheck as --premium"`
}

// Document returns an empty value of the config document type for s.
func (s Schema) Document() any {
	if s == SchemaNamed {
		return &NamedDocument{}
	}
	return &GenericDocument{}
}
