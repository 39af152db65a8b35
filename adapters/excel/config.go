package excel

// Config describes a tabular survey file
type Config struct {
	FilePath string `json:"file_path"`
	// Sheet is the xlsx sheet to read; empty selects the first sheet.
	Sheet string `json:"sheet"`
}

// DefaultConfig reads the first sheet of path
func DefaultConfig(path string) Config {
	return Config{FilePath: path}
}
