package schema

import (
	"encoding/json"
	"testing"
)

func TestReportSchemaIsValidJSON(t *testing.T) {
	data, err := FS.ReadFile("report.schema.json")
	if err != nil {
		t.Fatalf("failed to read report schema: %v", err)
	}

	var v map[string]interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("report.schema.json is not a valid JSON object: %v", err)
	}
	if _, ok := v["properties"]; !ok {
		t.Error("report schema has no properties")
	}
}
