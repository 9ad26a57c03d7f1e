// Package query builds Atlas Search compound queries from extracted
// search entities. Translation is pure: the same entity set always
// yields the same clause tree, and no input ever fails.
package query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Node is one clause of a compound query.
type Node interface {
	Document() bson.M
}

// Text matches a query string against one or more document paths.
type Text struct {
	Query string
	Paths []string
}

func (t Text) Document() bson.M {
	var path any
	if len(t.Paths) == 1 {
		path = t.Paths[0]
	} else {
		path = t.Paths
	}
	return bson.M{"text": bson.M{"query": t.Query, "path": path}}
}

// Compound groups clauses into mandatory (must) and preferred (should)
// branches. A Compound can nest inside another as a single clause.
type Compound struct {
	Must   []Node
	Should []Node
}

func (c Compound) Document() bson.M {
	return bson.M{"compound": bson.M{
		"must":   documents(c.Must),
		"should": documents(c.Should),
	}}
}

func documents(nodes []Node) []bson.M {
	out := make([]bson.M, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Document())
	}
	return out
}

// Pipeline renders the full aggregation for a cache lookup: the
// $search stage over the named index, a hard result cap, a projection
// of display fields plus the text-match score, and a descending sort
// on that score.
func Pipeline(index string, q Compound, limit int64) mongo.Pipeline {
	search := bson.M{
		"index": index,
		"compound": bson.M{
			"must":   documents(q.Must),
			"should": documents(q.Should),
		},
	}

	return mongo.Pipeline{
		{{Key: "$search", Value: search}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{
			"_id":                        0,
			"relevance_score":            bson.M{"$meta": "searchScore"},
			"full_name":                  1,
			"profile_pic_url":            1,
			"background_cover_image_url": 1,
			"linkedin_profile_url":       1,
			"headline":                   1,
			"city":                       1,
			"last_updated":               1,
		}}},
		{{Key: "$sort", Value: bson.M{"relevance_score": -1}}},
	}
}
