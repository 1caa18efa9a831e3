package domain

// Config represents the tourbook configuration loaded from tourbook.yaml.
type Config struct {
	Store   StoreConfig
	Display DisplayConfig
}

type StoreConfig struct {
	// Path is relative to the workspace root unless absolute.
	Path string
	// Format overrides the codec picked from the file extension (yaml|json|xml).
	Format string
}

type DisplayConfig struct {
	Currency    string
	RowTemplate string
}

const DefaultRowTemplate = "{{index}}. {{name}} [{{variant}}] - {{duration}} {{unit}}, stops: {{stops}}, cost: {{cost}} {{currency}}"

// DefaultConfig provides sane defaults if tourbook.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Path: "tours.yaml",
		},
		Display: DisplayConfig{
			Currency:    "UAH",
			RowTemplate: DefaultRowTemplate,
		},
	}
}

// WorkspaceSpec describes where `tourbook init` lays out a workspace.
type WorkspaceSpec struct {
	Root string
}
