package config

import "os"

// CLI captures process level configuration.
type CLI struct {
	// BelfiorePath optionally points at a replacement municipality table in
	// the same code,province,name format as the bundled one. Empty means the
	// bundled table.
	BelfiorePath string
}

// FromEnv builds a CLI config from environment variables so main stays lean.
func FromEnv() CLI {
	return CLI{
		BelfiorePath: os.Getenv("CF_BELFIORE_PATH"),
	}
}
