package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectionObject(t *testing.T) {
	content := `{"tags": ["Sports", "Coffee"], "strategy": "Lean into the morning routine."}`

	sel, err := parseSelection(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sports", "Coffee"}, sel.Tags)
	assert.Equal(t, "Lean into the morning routine.", sel.Strategy)
}

func TestParseSelectionBareArray(t *testing.T) {
	sel, err := parseSelection(`["Sports", "Coffee"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sports", "Coffee"}, sel.Tags)
	assert.Empty(t, sel.Strategy)
}

func TestParseSelectionMarkdownFences(t *testing.T) {
	content := "```json\n{\"tags\": [\"Books\"], \"strategy\": \"Pick a classic.\"}\n```"

	sel, err := parseSelection(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"Books"}, sel.Tags)
	assert.Equal(t, "Pick a classic.", sel.Strategy)
}

func TestParseSelectionSurroundingProse(t *testing.T) {
	content := `Here are my picks: ["Sports", "Coffee"] — hope that helps!`

	sel, err := parseSelection(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sports", "Coffee"}, sel.Tags)
}

func TestParseSelectionEmptyTagsIsValid(t *testing.T) {
	sel, err := parseSelection(`{"tags": [], "strategy": "Nothing fits."}`)
	require.NoError(t, err)
	assert.Empty(t, sel.Tags)
	assert.Equal(t, "Nothing fits.", sel.Strategy)
}

func TestParseSelectionRejectsGarbage(t *testing.T) {
	for _, content := range []string{
		"",
		"I could not decide on any tags.",
		`{"answer": 42}`,
		`{"tags": "Sports"}`,
		"```json\n```",
	} {
		_, err := parseSelection(content)
		assert.Error(t, err, "content %q should not parse", content)
	}
}

func TestExtractJSONBracketInString(t *testing.T) {
	content := `{"tags": ["Sports"], "strategy": "use a {nice} box"}`

	got := extractJSON(content)
	assert.Equal(t, content, got)
}
