package model

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// tagSeparators matches the delimiters accepted inside a single tag string:
// runs of commas, whitespace, and hash signs all count as one separator.
var tagSeparators = regexp.MustCompile(`[,\s#]+`)

// TagList is a record's tag set. On the wire it accepts either a JSON array
// ("tags": ["work", "home"]) or a single delimited string
// ("tags": "work, home #ideas"); both normalize to the same canonical form.
type TagList []string

// UnmarshalJSON resolves the array-or-string union. Input that is neither
// shape degrades to an empty list instead of failing the request.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err == nil {
		tags := make(TagList, 0, len(raw))
		for _, v := range raw {
			tags = append(tags, coerceTag(v))
		}
		*t = tags.Normalize()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = SplitTags(s)
		return nil
	}

	*t = TagList{}
	return nil
}

// Normalize trims every entry, drops blanks, and deduplicates while keeping
// first-seen order. Normalizing an already normalized list is a no-op.
func (t TagList) Normalize() TagList {
	normalized := make(TagList, 0, len(t))
	seen := make(map[string]struct{}, len(t))
	for _, tag := range t {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// SplitTags turns a delimited tag string into a normalized TagList.
func SplitTags(s string) TagList {
	return TagList(tagSeparators.Split(s, -1)).Normalize()
}

func coerceTag(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		// Nulls and nested structures carry no usable tag text.
		return ""
	}
}
