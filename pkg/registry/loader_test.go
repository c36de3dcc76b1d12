package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.webassert/pkg/suite"
)

const jsonBank = `{
  "version": "1",
  "suites": [
    {
      "id": "login",
      "name": "Login page",
      "checks": [
        {"kind": "exists", "selector": "#loginForm"},
        {"kind": "cookie", "name": "session", "expect": "not_empty"}
      ]
    }
  ]
}`

const yamlBank = `version: "1"
suites:
  - id: dashboard
    name: Dashboard
    dependencies: [login]
    checks:
      - kind: title
        expect: "contains:Dashboard"
      - kind: element_count
        selector: ".widget"
        expect: "at_least:3"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefinitionsFromFileJSON(t *testing.T) {
	reg := NewRegistry()
	path := writeFile(t, t.TempDir(), "bank.json", jsonBank)

	require.NoError(t, LoadDefinitionsFromFile(reg, path))

	def, err := reg.Get("login")
	require.NoError(t, err)
	assert.Equal(t, "Login page", def.Name)
	require.Len(t, def.Checks, 2)
	assert.Equal(t, "exists", def.Checks[0].Kind)
	assert.Equal(t, "session", def.Checks[1].Name)
}

func TestLoadDefinitionsFromFileYAML(t *testing.T) {
	reg := NewRegistry()
	path := writeFile(t, t.TempDir(), "bank.yaml", yamlBank)

	require.NoError(t, LoadDefinitionsFromFile(reg, path))

	def, err := reg.Get("dashboard")
	require.NoError(t, err)
	assert.Equal(t, []suite.ID{"login"}, def.Dependencies)
	require.Len(t, def.Checks, 2)
	assert.Equal(t, "contains:Dashboard", def.Checks[0].Expect)
	assert.Equal(t, ".widget", def.Checks[1].Selector)
}

func TestLoadDefinitionsFromDir(t *testing.T) {
	reg := NewRegistry()
	dir := t.TempDir()

	writeFile(t, dir, "a.json", jsonBank)
	writeFile(t, dir, "b.yml", yamlBank)
	writeFile(t, dir, "notes.txt", "ignored")

	require.NoError(t, LoadDefinitionsFromDir(reg, dir))
	assert.Equal(t, 2, reg.Count())
}

func TestLoadDefinitionsBadFile(t *testing.T) {
	reg := NewRegistry()
	path := writeFile(t, t.TempDir(), "bad.json", "{nope")

	err := LoadDefinitionsFromFile(reg, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	reg := NewRegistry()
	err := LoadDefinitionsFromFile(reg, "/does/not/exist.json")
	assert.ErrorContains(t, err, "failed to read")
}
