package flatten

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Document is a JSON object with its keys kept in source order.
type Document struct {
	Fields []Field
}

// Field is one key/value pair of a Document.
type Field struct {
	Key   string
	Value Value
}

// Value is either a nested object or a scalar already rendered to text.
// Arrays count as scalars.
type Value struct {
	Object *Document
	Text   string
}

// IsObject reports whether v holds a nested Document.
func (v Value) IsObject() bool { return v.Object != nil }

// Decode reads exactly one JSON object from r. Anything else at the top
// level, a syntax error, or trailing data is an error.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.New("invalid JSON: extra data after top-level object")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if firstByte(raw) != '{' {
		return nil, errors.New("top-level JSON value is not an object")
	}
	return decodeObject(raw)
}

// decodeObject walks a raw object token by token so keys keep their order.
// Values are pulled whole as RawMessage and classified by their first byte.
func decodeObject(raw json.RawMessage) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if _, err := dec.Token(); err != nil { // opening '{'
		return nil, err
	}

	doc := &Document{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}

		v, err := decodeValue(val)
		if err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		doc.Fields = append(doc.Fields, Field{Key: key, Value: v})
	}

	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return doc, nil
}

func decodeValue(raw json.RawMessage) (Value, error) {
	switch firstByte(raw) {
	case '{':
		obj, err := decodeObject(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Object: obj}, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, err
		}
		return Value{Text: s}, nil
	case '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return Value{}, err
		}
		return Value{Text: buf.String()}, nil
	default:
		// numbers, true, false, null: the literal is the text form
		return Value{Text: string(bytes.TrimSpace(raw))}, nil
	}
}

func firstByte(raw []byte) byte {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}
