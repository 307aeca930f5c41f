package requests

import "testing"

func TestGetPlayerBuildAndParseRequest(t *testing.T) {
	d, ok := Lookup(TypeGetPlayer)
	if !ok {
		t.Fatal("TypeGetPlayer not registered")
	}

	raw := Build(d.Request, map[string]interface{}{
		"player_locale": map[string]interface{}{
			"country":  "US",
			"language": "en",
			"timezone": "America/New_York",
		},
	})
	if len(raw) == 0 {
		t.Error("expected non-empty built request")
	}
}

func TestGetMapObjectsRepeatedFields(t *testing.T) {
	d, ok := Lookup(TypeGetMapObjects)
	if !ok {
		t.Fatal("TypeGetMapObjects not registered")
	}

	raw := Build(d.Request, map[string]interface{}{
		"cell_id":   []interface{}{int64(1), int64(2), int64(3)},
		"latitude":  47.5,
		"longitude": 19.05,
	})
	if len(raw) == 0 {
		t.Error("expected non-empty built request")
	}
}

func TestFortSearchResponseParse(t *testing.T) {
	d, ok := Lookup(TypeFortSearch)
	if !ok {
		t.Fatal("TypeFortSearch not registered")
	}

	raw := appendInt64(nil, 1, 1)
	raw = appendInt64(raw, 3, 500)

	parsed, err := Parse(d.Response, raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed["result"] != int64(1) {
		t.Errorf("result = %v, want 1", parsed["result"])
	}
	if parsed["experience_awarded"] != int64(500) {
		t.Errorf("experience_awarded = %v, want 500", parsed["experience_awarded"])
	}
}

func TestUnknownFieldNameIsSkippedNotFatal(t *testing.T) {
	d, ok := Lookup(TypePlayerUpdate)
	if !ok {
		t.Fatal("TypePlayerUpdate not registered")
	}

	raw := Build(d.Request, map[string]interface{}{
		"latitude":    47.5,
		"nonexistent": "ignored",
		"longitude":   19.05,
	})
	if len(raw) == 0 {
		t.Error("expected non-empty built request")
	}
}
