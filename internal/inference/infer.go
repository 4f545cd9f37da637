package inference

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"net/http"
	"strings"

	"github.com/giftwiseapp/giftwise-server/internal/errors"
)

// InferTags asks the model to select the most relevant tag names for a
// recipient description, plus a short prose gifting strategy.
//
// The returned names are the model's raw picks; out-of-vocabulary names
// are the caller's problem to filter. Transport failures, non-2xx
// statuses, timeouts, and a missing API key all surface as
// INFERENCE_UNAVAILABLE; a response body that does not decode to the
// expected shape is MALFORMED_MODEL_OUTPUT so contract drift with the
// provider stays distinguishable from an outage in logs.
func (c *Client) InferTags(ctx context.Context, description string, vocabulary []string) (Selection, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Selection{}, errors.InvalidInput("description must not be empty")
	}
	if len(vocabulary) == 0 {
		return Selection{}, errors.InvalidInput("tag vocabulary must not be empty")
	}
	if c.apiKey == "" {
		return Selection{}, errors.InferenceUnavailable("inference API key not configured", nil)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return Selection{}, errors.InferenceUnavailable("rate limit wait", err)
	}

	content, err := c.complete(ctx, c.selectionPrompt(description, vocabulary))
	if err != nil {
		return Selection{}, err
	}

	selection, err := parseSelection(content)
	if err != nil {
		c.logger.Error("model output did not match the selection contract",
			"error", err,
			"content_prefix", prefix(content, 120),
		)
		return Selection{}, errors.MalformedModelOutput("model returned an unexpected payload", err)
	}

	c.logger.Debug("inferred tags",
		"tags", selection.Tags,
		"has_strategy", selection.Strategy != "",
	)

	return selection, nil
}

// selectionPrompt builds the instruction sent to the model.
func (c *Client) selectionPrompt(description string, vocabulary []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Select the 2-%d most relevant tags from this list: %s\n\n",
		c.maxTags, strings.Join(vocabulary, ", "))
	b.WriteString("Pick only tags from the list, based on the recipient description below.\n")
	b.WriteString("Also write a short, practical gifting strategy (under 150 words): ")
	b.WriteString("how to choose among the matching gifts, a sensible price range, and one tip on presentation or timing.\n\n")
	b.WriteString(`Respond with JSON only, in the form {"tags": ["tag1", "tag2"], "strategy": "..."}.`)
	b.WriteString("\n\nRecipient description:\n")
	b.WriteString(description)
	return b.String()
}

// complete performs one chat-completion round trip and returns the
// message content of the first choice.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
	})
	if err != nil {
		return "", errors.Internalf("encode completion request: %v", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.InferenceUnavailable("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts land here as well; both map to the same fatal path.
		return "", errors.InferenceUnavailable("completion request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.InferenceUnavailable(
			fmt.Sprintf("completion request failed: status %d", resp.StatusCode), nil)
	}

	var completion chatResponse
	if err := json.UnmarshalRead(resp.Body, &completion); err != nil {
		return "", errors.MalformedModelOutput("decode completion response", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", errors.MalformedModelOutput("completion response has no content", nil)
	}

	return completion.Choices[0].Message.Content, nil
}

// prefix truncates s for log output.
func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
