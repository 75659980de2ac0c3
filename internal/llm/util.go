// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock recovers the JSON payload from an LLM response. It strips
// markdown code fences and any conversational preamble or trailing prose
// around the first balanced JSON object or array. Models wrap or narrate
// their output even when instructed to return raw JSON.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Cut preamble and trailing prose around the first JSON value.
	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")

	start := objIdx
	extract := extractJSONObject
	if objIdx < 0 || (arrIdx >= 0 && arrIdx < objIdx) {
		start = arrIdx
		extract = extractJSONArray
	}
	if start >= 0 {
		if payload := extract(text[start:]); payload != "" {
			return payload
		}
	}

	return text
}

// extractJSONObject returns the balanced JSON object at the start of s, or
// "" when s does not begin with one.
func extractJSONObject(s string) string {
	return extractBalanced(s, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of s, or ""
// when s does not begin with one.
func extractJSONArray(s string) string {
	return extractBalanced(s, '[', ']')
}

// extractBalanced scans for the closing delimiter matching s[0]. String
// literals and escapes are honored so delimiters inside values do not end
// the scan.
func extractBalanced(s string, open, closing byte) string {
	if len(s) == 0 || s[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			if inString {
				escaped = true
			}
		case c == '"':
			inString = !inString
		case inString:
			// Delimiters inside string values are data.
		case c == open:
			depth++
		case c == closing:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}

	return ""
}
