package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go-hh-publisher/internal/models"
)

// ParseSummary resolves the model's JSON reply into tagged summary fields.
// Each field may arrive as a list, a string, a string holding a serialised
// list, or be missing.
func ParseSummary(raw string) (models.Summary, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extractObject(cleanMarkdownJSON(raw))), &fields); err != nil {
		return models.Summary{}, fmt.Errorf("decode summary: %w", err)
	}

	return models.Summary{
		Responsibilities: parseField(fields["responsibilities"]),
		Requirements:     parseField(fields["requirements"]),
		AboutCompany:     parseField(fields["about_company"]),
	}, nil
}

func parseField(raw json.RawMessage) models.SummaryField {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.EmptyField()
	}

	switch raw[0] {
	case '[':
		var items []any
		if err := json.Unmarshal(raw, &items); err != nil {
			return models.TextField(string(raw))
		}
		return models.ItemsField(stringify(items))
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return models.TextField(string(raw))
		}
		return ParseTextField(s)
	default:
		return models.TextField(string(raw))
	}
}

// ParseTextField handles a plain string value. A string that looks like a
// list literal ("['a', 'b']") becomes Items; if it does not parse it is kept
// as one Text bullet.
func ParseTextField(s string) models.SummaryField {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.EmptyField()
	}
	if !looksLikeList(s) {
		return models.TextField(s)
	}

	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return models.ItemsField(compact(items))
	}
	if items, ok := parsePyList(s); ok {
		return models.ItemsField(compact(items))
	}
	return models.TextField(s)
}

func looksLikeList(s string) bool {
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

func stringify(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			out = append(out, t)
		default:
			out = append(out, fmt.Sprint(t))
		}
	}
	return compact(out)
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// parsePyList reads a list of quoted strings written with either quote
// style, e.g. ['a', "b's"]. Quotes and backslashes are ASCII, so scanning
// bytes is safe for UTF-8 input.
func parsePyList(s string) ([]string, bool) {
	inner := strings.TrimSpace(s[1 : len(s)-1])
	items := []string{}
	i := 0
	for {
		for i < len(inner) && isSpace(inner[i]) {
			i++
		}
		if i == len(inner) {
			return items, true
		}

		q := inner[i]
		if q != '\'' && q != '"' {
			return nil, false
		}
		i++

		var b strings.Builder
		for i < len(inner) && inner[i] != q {
			if inner[i] == '\\' && i+1 < len(inner) {
				i++
			}
			b.WriteByte(inner[i])
			i++
		}
		if i >= len(inner) {
			return nil, false // unterminated
		}
		i++
		items = append(items, b.String())

		for i < len(inner) && isSpace(inner[i]) {
			i++
		}
		if i < len(inner) {
			if inner[i] != ',' {
				return nil, false
			}
			i++
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
