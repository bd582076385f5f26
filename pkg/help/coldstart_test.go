package help

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColdstartIsValidYAML(t *testing.T) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &doc); err != nil {
		t.Fatalf("ColdstartYAML does not parse: %v", err)
	}

	if _, ok := doc["commands"]; !ok {
		t.Error("ColdstartYAML missing commands section")
	}
}
