package repository

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListQuery carries the optional list-endpoint parameters. Zero values
// impose no constraint; only the owner restriction is unconditional.
type ListQuery struct {
	Owner    string
	Q        string // free-text term, matched as a case-insensitive substring
	Tags     string // comma-separated tag filter, OR semantics
	Favorite string // restricts to favorites when exactly "true"
}

// Filter compiles the query into a Mongo predicate. Active conditions are
// ANDed together; fields names the text fields the free-text term searches
// across (OR within).
func (q ListQuery) Filter(fields ...string) bson.M {
	filter := bson.M{"user_id": q.Owner}

	if q.Q != "" {
		// QuoteMeta keeps the term a literal substring rather than a
		// caller-supplied regular expression.
		pattern := regexp.QuoteMeta(q.Q)
		or := make([]bson.M, 0, len(fields))
		for _, field := range fields {
			or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
		}
		filter["$or"] = or
	}

	if tags := splitTagFilter(q.Tags); len(tags) > 0 {
		filter["tags"] = bson.M{"$in": tags}
	}

	if q.Favorite == "true" {
		filter["is_favorite"] = true
	}

	return filter
}

// FindOptions returns the fixed list ordering: creation time, newest first.
func (q ListQuery) FindOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// splitTagFilter splits the comma-separated tag parameter, trimming entries
// and dropping blanks. The query parameter splits on commas only; richer
// delimiters are a tag-input concern, not a filter one.
func splitTagFilter(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
