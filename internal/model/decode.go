package model

import (
	"encoding/json"
	"fmt"
)

// Decode builds an element from its saved-project JSON. Fields absent from
// raw keep the editor defaults of the element's kind.
func Decode(raw []byte) (Element, error) {
	var head struct {
		Type Kind   `json:"type"`
		ID   string `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode element: %w", err)
	}
	el, err := New(head.Type)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", head.ID, err)
	}
	if err := json.Unmarshal(raw, el); err != nil {
		return nil, fmt.Errorf("element %q: %w", head.ID, err)
	}
	el.Base().Type = head.Type
	return el, nil
}

// Encode renders el in the saved-project format. The type tag always
// reflects el's concrete kind.
func Encode(el Element) ([]byte, error) {
	raw, err := json.Marshal(el)
	if err != nil {
		return nil, fmt.Errorf("encode element %q: %w", el.Base().ID, err)
	}
	if el.Base().Type == el.Kind() {
		return raw, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encode element %q: %w", el.Base().ID, err)
	}
	fields["type"], _ = json.Marshal(el.Kind())
	return json.Marshal(fields)
}

// Clone deep-copies el through its serialized form.
func Clone(el Element) (Element, error) {
	raw, err := Encode(el)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}
