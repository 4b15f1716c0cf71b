package event

import (
	"encoding/json"
	"fmt"
)

// Type tags the shape of an incoming event
type Type string

const (
	TypeAPIGateway Type = "api_gateway"
	TypeSQS        Type = "sqs"
	TypeS3         Type = "s3"
	TypeDefault    Type = "default"
)

// TypeKey is the top-level field callers use to declare the event type
const TypeKey = "eventType"

// Summary is the type-specific digest of an event
type Summary map[string]any

// TypeOf reads the declared event type. Absent or non-string values yield TypeDefault.
func TypeOf(ev *Object) Type {
	v, ok := ev.Get(TypeKey)
	if !ok {
		return TypeDefault
	}
	s, ok := v.(string)
	if !ok {
		return TypeDefault
	}
	return Type(s)
}

// TypeValue returns the eventType field exactly as sent, or "default" when absent
func TypeValue(ev *Object) any {
	if v, ok := ev.Get(TypeKey); ok {
		return v
	}
	return string(TypeDefault)
}

// Branch maps t onto the summary it selects; unrecognized types select TypeDefault
func Branch(t Type) Type {
	switch t {
	case TypeAPIGateway, TypeSQS, TypeS3:
		return t
	default:
		return TypeDefault
	}
}

// Summarize builds a compact summary of ev according to t.
// Unrecognized types fall through to the default summary. The input is never modified.
func Summarize(ev *Object, t Type) Summary {
	switch Branch(t) {
	case TypeAPIGateway:
		return summarizeAPIGateway(ev)
	case TypeSQS:
		return summarizeSQS(ev)
	case TypeS3:
		return summarizeS3(ev)
	default:
		return Summary{
			"event_size":     ReprLen(ev),
			"top_level_keys": ev.Keys(),
			"processed_as":   string(TypeDefault),
		}
	}
}

func summarizeAPIGateway(ev *Object) Summary {
	return Summary{
		"method":       getOr(ev, "httpMethod", "Unknown"),
		"path":         getOr(ev, "path", "Unknown"),
		"query_params": getOr(ev, "queryStringParameters", NewObject()),
		"headers":      count(getOr(ev, "headers", nil)),
	}
}

func summarizeSQS(ev *Object) Summary {
	recs := records(ev)
	ids := make([]any, len(recs))
	for i, rec := range recs {
		if obj, ok := rec.(*Object); ok {
			ids[i], _ = obj.Get("messageId")
		}
	}
	return Summary{
		"records_count": len(recs),
		"message_ids":   ids,
	}
}

func summarizeS3(ev *Object) Summary {
	recs := records(ev)
	seen := make(map[string]struct{}, len(recs))
	buckets := []any{}
	for _, rec := range recs {
		obj, _ := rec.(*Object)
		name, _ := obj.Path("s3", "bucket", "name")

		key := dedupKey(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		buckets = append(buckets, name)
	}
	return Summary{
		"records_count": len(recs),
		"buckets":       buckets,
	}
}

func getOr(ev *Object, key string, fallback any) any {
	if v, ok := ev.Get(key); ok {
		return v
	}
	return fallback
}

// records returns the Records sequence, or nil when it is missing or not a sequence
func records(ev *Object) []any {
	v, _ := ev.Get("Records")
	recs, _ := v.([]any)
	return recs
}

func count(v any) int {
	switch c := v.(type) {
	case *Object:
		return c.Len()
	case []any:
		return len(c)
	case string:
		return len([]rune(c))
	default:
		return 0
	}
}

// dedupKey gives every decoded value a comparable identity, including arrays and objects
func dedupKey(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%T:%v", v, v)
	}
	return string(data)
}
