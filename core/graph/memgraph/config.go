package memgraph

// Config selects where graph dumps are read from.
type Config struct {
	// Source is either "file" or "bucket".
	Source string `mapstructure:"source" default:"file"`
	// Path is the local dump file used when Source is "file".
	Path string `mapstructure:"path" default:"state.yaml"`
	// Object is the object name inside the storage bucket used when Source is "bucket".
	Object string `mapstructure:"object" default:"dumps/latest.yaml"`
}

const (
	SourceFile   = "file"
	SourceBucket = "bucket"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceBucket:
		return true
	default:
		return false
	}
}
