package library

import (
	"encoding/json"
	"fmt"
	"os"

	"goap-planner/internal/goap"
)

// Document is the wire format for an action library: a flat "actions"
// array, matching the reference C planner's JSON schema.
type Document struct {
	Actions []actionDocument `json:"actions"`
}

type actionDocument struct {
	Name           string          `json:"name"`
	Cost           *uint32         `json:"cost"`
	PreConditions  map[string]bool `json:"preConditions"`
	PostConditions map[string]bool `json:"postConditions"`
}

// Parse validates and decodes a JSON action library document into a
// goap.Action slice, in library order. Every action must carry a
// non-empty name, a cost, and preConditions/postConditions objects (an
// empty object is fine, a missing key is not); action names must be
// unique within the document.
func Parse(data []byte) ([]goap.Action, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}

	actions := make([]goap.Action, 0, len(doc.Actions))
	seen := make(map[string]bool, len(doc.Actions))

	for i, a := range doc.Actions {
		if a.Name == "" {
			return nil, fmt.Errorf("action at index %d: name is not a string or doesn't exist", i)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("action %q: duplicate name in library", a.Name)
		}
		if a.Cost == nil {
			return nil, fmt.Errorf("action %q: cost is not a number or doesn't exist", a.Name)
		}
		if a.PreConditions == nil {
			return nil, fmt.Errorf("action %q: preConditions is not an object or doesn't exist", a.Name)
		}
		if a.PostConditions == nil {
			return nil, fmt.Errorf("action %q: postConditions is not an object or doesn't exist", a.Name)
		}

		seen[a.Name] = true
		actions = append(actions, goap.Action{
			Name:           a.Name,
			Cost:           *a.Cost,
			Preconditions:  goap.NewWorldState(a.PreConditions),
			Postconditions: goap.NewWorldState(a.PostConditions),
		})
	}

	return actions, nil
}

// LoadFromFile reads and parses a JSON action library document from disk.
func LoadFromFile(path string) ([]goap.Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}
	return Parse(data)
}

// Marshal serializes a library back to the wire document format, for
// persistence or for round-tripping a library fetched from storage.
func Marshal(actions []goap.Action) ([]byte, error) {
	doc := Document{Actions: make([]actionDocument, len(actions))}
	for i, a := range actions {
		cost := a.Cost
		doc.Actions[i] = actionDocument{
			Name:           a.Name,
			Cost:           &cost,
			PreConditions:  worldStateToMap(a.Preconditions),
			PostConditions: worldStateToMap(a.Postconditions),
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

func worldStateToMap(s goap.WorldState) map[string]bool {
	out := make(map[string]bool, len(s))
	for _, k := range s.Keys() {
		out[k] = s.Get(k) == goap.True
	}
	return out
}
