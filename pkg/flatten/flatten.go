// Package flatten turns nested JSON documents into single-level records and
// projects them onto a fixed CSV column list.
package flatten

// Record is a flat key/value mapping that remembers insertion order.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under key. Re-setting a key replaces the value but keeps
// the key's original position.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key and whether it was present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int { return len(r.keys) }

// Project returns one value per column, "" for columns the record lacks.
func (r *Record) Project(columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = r.values[col]
	}
	return row
}

// Flatten collapses doc into a Record. A nested object under key k
// contributes k+delimiter+j for every key j of its own flattened form.
func Flatten(doc *Document, delimiter string) *Record {
	out := NewRecord()
	for _, f := range doc.Fields {
		if f.Value.IsObject() {
			inner := Flatten(f.Value.Object, delimiter)
			for _, j := range inner.keys {
				out.Set(f.Key+delimiter+j, inner.values[j])
			}
			continue
		}
		out.Set(f.Key, Stringify(f.Value))
	}
	return out
}

// Stringify renders a scalar value. Strings are unquoted; numbers, booleans,
// null and arrays keep their JSON text.
func Stringify(v Value) string {
	return v.Text
}
