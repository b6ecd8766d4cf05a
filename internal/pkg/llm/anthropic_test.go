package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONPlainObject(t *testing.T) {
	assert.Equal(t, `{"summary": "ok"}`, ExtractJSON(`{"summary": "ok"}`))
}

func TestExtractJSONStripsFences(t *testing.T) {
	fenced := "```json\n{\"summary\": \"ok\"}\n```"
	assert.Equal(t, `{"summary": "ok"}`, ExtractJSON(fenced))

	unlabeled := "```\n{\"summary\": \"ok\"}\n```"
	assert.Equal(t, `{"summary": "ok"}`, ExtractJSON(unlabeled))
}

func TestExtractJSONFromSurroundingProse(t *testing.T) {
	text := "Here is the audit result:\n{\"summary\": \"ok\", \"findings\": []}\nLet me know if you need more."
	assert.Equal(t, `{"summary": "ok", "findings": []}`, ExtractJSON(text))
}

func TestExtractJSONNoObject(t *testing.T) {
	assert.Empty(t, ExtractJSON("no json here"))
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	client := NewAnthropicClient("", "claude-sonnet-4-20250514")

	_, err := client.Complete(context.Background(), "system", "user")
	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")
}
