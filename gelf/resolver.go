package gelf

import (
	"strings"

	"github.com/nicwaller/gelfout"
)

// Resolve builds one GELF message from one event. It is pure
// computation: no I/O, no shared state beyond the severity table,
// and it never fails for a well-formed event.
func Resolve(evt *gelfout.Event, cfg Config) Message {
	m := make(Message, len(evt.Fields)+4)

	// the literal message field is the default short_message;
	// a configured field only overrides it when it coerces non-empty
	short := evt.Field("message").GetString()
	if cfg.ShortMessage != "" {
		v := evt.Field(cfg.ShortMessage).MustGet()
		if seq, isSeq := v.([]any); isSeq && len(seq) == 1 {
			v = seq[0]
		}
		short = gelfout.CoalesceStr(gelfout.Stringify(v), short)
	}
	m["short_message"] = short

	m["full_message"] = evt.Sprintf(cfg.FullMessage)
	m["host"] = evt.Sprintf(cfg.Sender)

	if cfg.ShipMetadata {
		for _, name := range evt.Keys() {
			if name == "message" || cfg.ignores(name) {
				continue
			}
			value := evt.Fields[name]
			if value == nil {
				continue
			}
			key := strings.TrimPrefix(name, "_")
			// note that "id" lands on the wire as "_id", keeping clear
			// of the protocol-reserved "id"
			switch v := value.(type) {
			case []any:
				m["_"+key] = joinSeq(v)
			case map[string]any:
				// flatten exactly one level; anything nested deeper
				// rides along as an opaque value
				for inner, innerValue := range v {
					m["_"+key+"_"+inner] = innerValue
				}
			default:
				m["_"+key] = v
			}
		}
	}

	if cfg.ShipTags {
		if tags, isSeq := evt.Field("tags").MustGet().([]any); isSeq {
			m["_tags"] = joinSeq(tags)
		}
	}

	for key, value := range cfg.CustomFields {
		if key == "id" {
			// would shadow the reserved wire field, drop it
			continue
		}
		m["_"+key] = value
	}

	// probe the level candidates in order: a candidate is skipped only
	// when it has a %{...} reference that failed to resolve; the last
	// candidate is used as-is, a best-effort literal fallback
	var level string
	for i, candidate := range cfg.Level {
		resolved := evt.Sprintf(candidate)
		if i < len(cfg.Level)-1 && gelfout.HasTemplateRef(candidate) && resolved == candidate {
			continue
		}
		level = resolved
		break
	}
	m["level"] = severityOf(level)

	return m
}

func joinSeq(seq []any) string {
	parts := make([]string, 0, len(seq))
	for _, v := range seq {
		parts = append(parts, gelfout.Stringify(v))
	}
	return strings.Join(parts, ", ")
}
