package flatten

import (
	"reflect"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode(%q) error = %v", src, err)
	}
	return doc
}

func recordMap(r *Record) map[string]string {
	m := make(map[string]string, r.Len())
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		m[k] = v
	}
	return m
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		delimiter string
		wantKeys  []string
		want      map[string]string
	}{
		{
			name:      "nested objects",
			src:       `{"a": 1, "b": {"c": 2, "d": {"e": 3}}}`,
			delimiter: "_",
			wantKeys:  []string{"a", "b_c", "b_d_e"},
			want:      map[string]string{"a": "1", "b_c": "2", "b_d_e": "3"},
		},
		{
			name:      "source key order is kept",
			src:       `{"z": 1, "m": {"y": 2, "b": 3}, "a": 4}`,
			delimiter: "_",
			wantKeys:  []string{"z", "m_y", "m_b", "a"},
			want:      map[string]string{"z": "1", "m_y": "2", "m_b": "3", "a": "4"},
		},
		{
			name:      "scalars keep their JSON text",
			src:       `{"s": "text", "f": 1.50, "e": 1e5, "t": true, "n": null, "empty": ""}`,
			delimiter: "_",
			wantKeys:  []string{"s", "f", "e", "t", "n", "empty"},
			want:      map[string]string{"s": "text", "f": "1.50", "e": "1e5", "t": "true", "n": "null", "empty": ""},
		},
		{
			name:      "arrays are opaque",
			src:       `{"emails": ["a@x.com", {"k": 1}], "none": [ ]}`,
			delimiter: "_",
			wantKeys:  []string{"emails", "none"},
			want:      map[string]string{"emails": `["a@x.com",{"k":1}]`, "none": "[]"},
		},
		{
			name:      "string escapes are decoded",
			src:       `{"name": "José \"J\""}`,
			delimiter: "_",
			wantKeys:  []string{"name"},
			want:      map[string]string{"name": `José "J"`},
		},
		{
			name:      "empty nested object contributes nothing",
			src:       `{"a": {}, "b": 1}`,
			delimiter: "_",
			wantKeys:  []string{"b"},
			want:      map[string]string{"b": "1"},
		},
		{
			name:      "multi-character delimiter",
			src:       `{"a": {"b": {"c": "x"}}}`,
			delimiter: "::",
			wantKeys:  []string{"a::b::c"},
			want:      map[string]string{"a::b::c": "x"},
		},
		{
			name:      "colliding compound key keeps first position",
			src:       `{"b_c": "literal", "b": {"c": "nested"}, "z": 0}`,
			delimiter: "_",
			wantKeys:  []string{"b_c", "z"},
			want:      map[string]string{"b_c": "nested", "z": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(mustDecode(t, tt.src), tt.delimiter)

			if !reflect.DeepEqual(got.Keys(), tt.wantKeys) {
				t.Errorf("Flatten() keys = %v, want %v", got.Keys(), tt.wantKeys)
			}
			if !reflect.DeepEqual(recordMap(got), tt.want) {
				t.Errorf("Flatten() = %v, want %v", recordMap(got), tt.want)
			}
		})
	}
}

func TestFlattenOutputIsFlat(t *testing.T) {
	src := `{"a": {"b": {"c": {"d": {"e": 1}}}}, "f": {"g": 2}}`
	got := Flatten(mustDecode(t, src), "_")

	// Flattening the rendered output again must not change anything.
	var b strings.Builder
	b.WriteString("{")
	for i, k := range got.Keys() {
		if i > 0 {
			b.WriteString(",")
		}
		v, _ := got.Get(k)
		b.WriteString(`"` + k + `":"` + v + `"`)
	}
	b.WriteString("}")

	again := Flatten(mustDecode(t, b.String()), "_")
	if !reflect.DeepEqual(recordMap(again), recordMap(got)) {
		t.Errorf("re-flatten = %v, want %v", recordMap(again), recordMap(got))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{name: "empty input", src: "", wantMsg: "invalid JSON"},
		{name: "syntax error", src: `{"a": }`, wantMsg: "invalid JSON"},
		{name: "unterminated object", src: `{"a": 1`, wantMsg: "invalid JSON"},
		{name: "top-level array", src: `[1, 2]`, wantMsg: "not an object"},
		{name: "top-level string", src: `"x"`, wantMsg: "not an object"},
		{name: "top-level null", src: `null`, wantMsg: "not an object"},
		{name: "trailing data", src: `{"a": 1} {"b": 2}`, wantMsg: "extra data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("Decode(%q) error = nil, want error", tt.src)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Decode(%q) error = %q, want it to contain %q", tt.src, err, tt.wantMsg)
			}
		})
	}
}

func TestDecodeAllowsSurroundingWhitespace(t *testing.T) {
	doc := mustDecode(t, "\n  {\"a\": 1}\n\n")
	if len(doc.Fields) != 1 || doc.Fields[0].Key != "a" {
		t.Errorf("Decode() fields = %+v, want single field a", doc.Fields)
	}
}

func TestRecordProject(t *testing.T) {
	r := NewRecord()
	r.Set("a", "1")
	r.Set("c", "3")

	got := r.Project([]string{"c", "b", "a"})
	want := []string{"3", "", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Project() = %v, want %v", got, want)
	}
}
