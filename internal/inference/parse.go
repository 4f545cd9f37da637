package inference

import (
	"encoding/json/v2"
	"fmt"
	"strings"
)

// parseSelection decodes model output into a Selection.
//
// Models wrap JSON in markdown fences or prose more often than not, so
// the payload is located inside the content first. Two shapes are
// accepted: a {"tags": [...], "strategy": "..."} object or a bare
// ["tag1", "tag2"] array. Anything else is an error, never a partial
// best-effort object.
func parseSelection(content string) (Selection, error) {
	payload := extractJSON(content)
	if payload == "" {
		return Selection{}, fmt.Errorf("no JSON payload in content")
	}

	if strings.HasPrefix(payload, "{") {
		var obj selectionPayload
		if err := json.Unmarshal([]byte(payload), &obj); err != nil {
			return Selection{}, fmt.Errorf("decode selection object: %w", err)
		}
		if obj.Tags == nil {
			return Selection{}, fmt.Errorf("selection object has no tags field")
		}
		return Selection{Tags: obj.Tags, Strategy: strings.TrimSpace(obj.Strategy)}, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(payload), &tags); err != nil {
		return Selection{}, fmt.Errorf("decode tag array: %w", err)
	}
	return Selection{Tags: tags}, nil
}

// extractJSON returns the first JSON object or array embedded in s,
// stripping markdown code fences and surrounding prose.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	// Strip ```json ... ``` fences.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return ""
	}

	open := s[start]
	var close byte = ']'
	if open == '{' {
		close = '}'
	}

	// Match the closing bracket by depth; good enough since tag names
	// and strategies do not nest brackets of the same kind unescaped.
	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case inString:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == open:
			depth++
		case ch == close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
