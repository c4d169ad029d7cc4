package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const winner127TOML = `title = "Winner 127"
system = "int"
entrants = [6, 1, 2, 9, 3, 4, 127, 5, 8, 7]
`

const jankenTOML = `system = "janken"
seed = 7

[[fighter]]
name = "Rocky"
rock = 1.0

[[fighter]]
name = "Papyrus"
paper = 1.0

[[fighter]]
name = "Edward"
scissors = 1.0
`

// writeDefinition writes a definition file into a temp dir and returns its path.
func writeDefinition(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
