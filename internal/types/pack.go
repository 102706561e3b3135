package types

type Metadata struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Owners      []string `yaml:"owners"`
	Description string   `yaml:"description,omitempty"`
}

// PackDefaults provides project-level defaults that the CLI and
// application layer use when a value is not explicitly provided via
// flags or environment variables.
type PackDefaults struct {
	DataDir  string `yaml:"data_dir,omitempty"`
	LockFile string `yaml:"lock_file,omitempty"`
	Backend  string `yaml:"backend,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Host     string `yaml:"host,omitempty"`
}

// Generation tunes what the LLM is asked to produce. Zero values fall
// back to the built-in prompt defaults.
type Generation struct {
	Theme       string  `yaml:"theme,omitempty"`
	Rooms       int     `yaml:"rooms,omitempty"`
	Items       int     `yaml:"items,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
	Attempts    int     `yaml:"attempts,omitempty"`
}

// PackSpec is the pack.yaml document describing a game-data pack set:
// who owns it, where its data files live, and how new packs are generated.
type PackSpec struct {
	APIVersion string       `yaml:"api_version"`
	Kind       SpecKind     `yaml:"kind"`
	Metadata   Metadata     `yaml:"metadata"`
	Defaults   PackDefaults `yaml:"defaults,omitempty"`
	Generation Generation   `yaml:"generation,omitempty"`
}
