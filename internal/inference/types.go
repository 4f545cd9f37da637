package inference

// Selection is the validated outcome of a tag-inference call.
type Selection struct {
	// Tags are the model's chosen tag names, in model order.
	// Names are NOT yet filtered against the live vocabulary; the
	// resolver owns that step.
	Tags []string
	// Strategy is optional prose gifting advice. Empty when the model
	// returned none.
	Strategy string
}

// chatRequest is the OpenAI-compatible completion request body.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the completion response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// selectionPayload is the structured shape we instruct the model to emit.
type selectionPayload struct {
	Tags     []string `json:"tags"`
	Strategy string   `json:"strategy"`
}
