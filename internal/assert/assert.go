package assert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// GenFixtureEnv, when set to "true", makes fixture assertions rewrite the
// fixture file instead of comparing against it.
const GenFixtureEnv = "GEN_FIXTURE"

// Assert wraps assert.Assertions together with the running test.
type Assert struct {
	*assert.Assertions
	T *testing.T
}

func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// FixturePath is fixtures/<test name>_<name>.json, relative to the package
// under test. Subtest separators are flattened to underscores.
func (a *Assert) FixturePath(name string) string {
	testName := strings.ReplaceAll(a.T.Name(), "/", "_")
	return filepath.Join("fixtures", fmt.Sprintf("%s_%s.json", testName, name))
}

// EqualToJSONFixture compares the indented JSON encoding of result with the
// named fixture file.
func (a *Assert) EqualToJSONFixture(fixtureName string, result any) {
	a.T.Helper()

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	a.NoError(err, "Failed to marshal result to JSON")

	fixturePath := a.FixturePath(fixtureName)

	if os.Getenv(GenFixtureEnv) == "true" {
		a.NoError(os.MkdirAll(filepath.Dir(fixturePath), 0o755), "Failed to create fixture directory")
		a.NoError(os.WriteFile(fixturePath, resultJSON, 0o644), "Failed to write fixture file")
		return
	}

	expected, err := os.ReadFile(fixturePath)
	if !a.NoError(err, "Failed to read fixture file (run with %s=true to create it)", GenFixtureEnv) {
		return
	}
	a.Equal(string(expected), string(resultJSON), "Result does not match fixture %s", fixturePath)
}

// EqualLines compares output line by line, ignoring a trailing newline.
func (a *Assert) EqualLines(expected []string, output string) {
	a.T.Helper()
	output = strings.TrimSuffix(output, "\n")
	var got []string
	if output != "" {
		got = strings.Split(output, "\n")
	}
	a.Equal(expected, got)
}
