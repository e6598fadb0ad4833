package manifest

// Manifest describes one thrift compilation: where to search for
// imports, which sources to compile, and where generated code goes.
type Manifest struct {
	Name      string   `yaml:"name"`
	Includes  []string `yaml:"includes"`
	Files     []string `yaml:"files"`
	Generator string   `yaml:"generator,omitempty"` // defaults to the configured generator
	Output    string   `yaml:"output"`
}
