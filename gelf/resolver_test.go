package gelf

import (
	"testing"

	"github.com/nicwaller/gelfout"
)

func TestResolve_Defaults(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("boom")
	evt.Field("severity").SetString("error")
	evt.Field("host").SetString("web1")

	m := Resolve(&evt, DefaultConfig())

	if actual := m.ShortMessage(); actual != "boom" {
		t.Errorf(`Expected short_message "boom" but got "%s"`, actual)
	}
	if actual := m.FullMessage(); actual != "boom" {
		t.Errorf(`Expected full_message "boom" but got "%s"`, actual)
	}
	if actual := m.Host(); actual != "web1" {
		t.Errorf(`Expected host "web1" but got "%s"`, actual)
	}
	if actual := m.Level(); actual != LOG_ERR {
		t.Errorf("Expected level 3 but got %d", actual)
	}
	if actual := m["_severity"]; actual != "error" {
		t.Errorf(`Expected _severity "error" but got "%v"`, actual)
	}
	// host is on the default ignore list, so it must not be flattened
	if _, present := m["_host"]; present {
		t.Error("_host should not be emitted with the default ignore list")
	}
	if len(m) != 5 {
		t.Errorf("Expected exactly 5 keys but got %d: %v", len(m), m)
	}
}

func TestResolve_NoMetadata(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShipMetadata = false
	cfg.CustomFields = map[string]any{"app": "checkout"}

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("severity").SetString("info")
	evt.Field("extra").SetString("dropped")

	m := Resolve(&evt, cfg)

	expected := []string{"short_message", "full_message", "host", "level", "_app"}
	if len(m) != len(expected) {
		t.Errorf("Expected exactly %d keys but got %d: %v", len(expected), len(m), m)
	}
	for _, key := range expected {
		if _, present := m[key]; !present {
			t.Errorf("Expected key %q to be present", key)
		}
	}
}

func TestResolve_FlattensPlainField(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("request_id").SetString("abc-123")

	m := Resolve(&evt, DefaultConfig())

	if actual := m["_request_id"]; actual != "abc-123" {
		t.Errorf(`Expected _request_id "abc-123" but got "%v"`, actual)
	}
}

func TestResolve_ReservedIdField(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("id").SetString("evt-1")

	m := Resolve(&evt, DefaultConfig())

	if actual := m["_id"]; actual != "evt-1" {
		t.Errorf(`Expected _id "evt-1" but got "%v"`, actual)
	}
	if _, present := m["id"]; present {
		t.Error("reserved id key must never reach the wire")
	}
	if _, present := m["_id_id"]; present {
		t.Error("id must not be double-renamed")
	}
}

func TestResolve_StripsOneLeadingUnderscore(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("_already").SetString("x")

	m := Resolve(&evt, DefaultConfig())

	if actual := m["_already"]; actual != "x" {
		t.Errorf(`Expected _already "x" but got "%v"`, actual)
	}
	if _, present := m["__already"]; present {
		t.Error("leading underscore must not be doubled")
	}
}

func TestResolve_SkipsNilValues(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("empty").Set(nil)

	m := Resolve(&evt, DefaultConfig())

	if _, present := m["_empty"]; present {
		t.Error("nil fields must be skipped during flattening")
	}
}

func TestResolve_JoinsSequences(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("hosts").Set([]any{"a", "b", "c"})

	m := Resolve(&evt, DefaultConfig())

	if actual := m["_hosts"]; actual != "a, b, c" {
		t.Errorf(`Expected _hosts "a, b, c" but got "%v"`, actual)
	}
}

func TestResolve_FlattensNestedMapOneLevel(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("a").Set(map[string]any{"b": 1, "c": 2})

	m := Resolve(&evt, DefaultConfig())

	if actual := m["_a_b"]; actual != 1 {
		t.Errorf(`Expected _a_b = 1 but got "%v"`, actual)
	}
	if actual := m["_a_c"]; actual != 2 {
		t.Errorf(`Expected _a_c = 2 but got "%v"`, actual)
	}
	if _, present := m["_a"]; present {
		t.Error("the nested map itself should not be emitted")
	}
}

func TestResolve_DeepNestingPassesThrough(t *testing.T) {
	deep := map[string]any{"x": 1}
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("outer").Set(map[string]any{"inner": deep})

	m := Resolve(&evt, DefaultConfig())

	// only one level is flattened; the second level rides along opaque
	actual, isMap := m["_outer_inner"].(map[string]any)
	if !isMap {
		t.Fatalf("Expected _outer_inner to be a map but got %v", m["_outer_inner"])
	}
	if actual["x"] != 1 {
		t.Errorf("Expected opaque inner map to be unchanged; got %v", actual)
	}
}

func TestResolve_Tags(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("tags").Set([]any{"x", "y"})

	m := Resolve(&evt, DefaultConfig())

	// metadata flattening also joins the tags sequence; ship_tags runs
	// last of the two, and both produce the same join
	if actual := m["_tags"]; actual != "x, y" {
		t.Errorf(`Expected _tags "x, y" but got "%v"`, actual)
	}
}

func TestResolve_CustomFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomFields = map[string]any{"id": "x", "app": "y"}

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")

	m := Resolve(&evt, cfg)

	if actual := m["_app"]; actual != "y" {
		t.Errorf(`Expected _app "y" but got "%v"`, actual)
	}
	if _, present := m["_id"]; present {
		t.Error("a custom field named id must be dropped")
	}
}

func TestResolve_CustomFieldsOverrideMetadata(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomFields = map[string]any{"env": "prod"}

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("env").SetString("dev")

	m := Resolve(&evt, cfg)

	if actual := m["_env"]; actual != "prod" {
		t.Errorf(`Expected _env "prod" but got "%v"`, actual)
	}
}

func TestResolve_LevelFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = []string{"%{sev}", "INFO"}

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")

	m := Resolve(&evt, cfg)

	if actual := m.Level(); actual != LOG_INFO {
		t.Errorf("Expected level 6 but got %d", actual)
	}
}

func TestResolve_LevelFirstCandidateWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = []string{"%{sev}", "INFO"}

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("sev").SetString("warning")

	m := Resolve(&evt, cfg)

	if actual := m.Level(); actual != LOG_WARNING {
		t.Errorf("Expected level 4 but got %d", actual)
	}
}

func TestResolve_LevelLastCandidateUsedEvenIfUnresolved(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = []string{"%{sev}", "%{also_missing}"}

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")

	m := Resolve(&evt, cfg)

	// the literal unresolved string has no numeric prefix, so 0
	if actual := m.Level(); actual != 0 {
		t.Errorf("Expected level 0 but got %d", actual)
	}
}

func TestResolve_SingleLevelCandidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = []string{"%{sev}"}

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")
	evt.Field("sev").SetString("notice")

	m := Resolve(&evt, cfg)

	if actual := m.Level(); actual != LOG_NOTICE {
		t.Errorf("Expected level 5 but got %d", actual)
	}
}

func TestResolve_UnresolvedHostShipsLiteral(t *testing.T) {
	evt := gelfout.NewEvent()
	evt.Field("message").SetString("hi")

	m := Resolve(&evt, DefaultConfig())

	if actual := m.Host(); actual != "%{host}" {
		t.Errorf(`Expected literal "%%{host}" but got "%s"`, actual)
	}
}

func TestResolve_ShortMessageOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortMessage = "summary"

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("the long version")
	evt.Field("summary").SetString("short")

	m := Resolve(&evt, cfg)

	if actual := m.ShortMessage(); actual != "short" {
		t.Errorf(`Expected short_message "short" but got "%s"`, actual)
	}
}

func TestResolve_ShortMessageUnwrapsSingleElementSequence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortMessage = "summary"

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("fallback")
	evt.Field("summary").Set([]any{"only"})

	m := Resolve(&evt, cfg)

	if actual := m.ShortMessage(); actual != "only" {
		t.Errorf(`Expected short_message "only" but got "%s"`, actual)
	}
}

func TestResolve_ShortMessageEmptyKeepsDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortMessage = "summary"

	evt := gelfout.NewEvent()
	evt.Field("message").SetString("fallback")
	evt.Field("summary").SetString("")

	m := Resolve(&evt, cfg)

	if actual := m.ShortMessage(); actual != "fallback" {
		t.Errorf(`Expected short_message "fallback" but got "%s"`, actual)
	}
}
