package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collection.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func validate(t *testing.T, content string) ValidationResults {
	t.Helper()
	results, err := NewValidator(writeFile(t, content)).Validate()
	require.NoError(t, err)
	return results
}

func hasMessage(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestValidateCleanCollection(t *testing.T) {
	results := validate(t, `
[collection]
id = "starter"
name = "Starter"
schema_version = "1.0"

[[cards]]
name = "Lightning Bolt"
mana_cost = "{R}"
rarity = "common"
image_url = "https://cards.example/bolt.png"
`)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateMissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.toml")).Validate()
	assert.Error(t, err)
}

func TestValidateHeaderErrors(t *testing.T) {
	results := validate(t, `
[collection]
name = "No ID"
schema_version = "2.0"
`)
	assert.True(t, hasMessage(results.Errors, "collection.id is required"))
	assert.True(t, hasMessage(results.Errors, "unsupported schema_version"))
	assert.True(t, hasMessage(results.Errors, "no cards"))
}

func TestValidateCardProblems(t *testing.T) {
	results := validate(t, `
[collection]
id = "starter"
name = "Starter"
schema_version = "1.0"

[[cards]]
name = "Odd One"
mana_cost = "{2{U}"
rarity = "timeshifted"
power = "2"

[[cards]]
name = "Odd One"
image_url = "https://cards.example/odd.png"
`)
	assert.True(t, hasMessage(results.Warnings, "unbalanced braces"))
	assert.True(t, hasMessage(results.Warnings, "unrecognized rarity"))
	assert.True(t, hasMessage(results.Warnings, "no artwork sources"))
	assert.True(t, hasMessage(results.Warnings, "power and toughness"))
	assert.True(t, hasMessage(results.Errors, "duplicate card id"))
}

func TestValidateUnnamedCard(t *testing.T) {
	results := validate(t, `
[collection]
id = "starter"
schema_version = "1.0"

[[cards]]
mana_cost = "{1}"
`)
	assert.True(t, hasMessage(results.Errors, "name is required"))
}
