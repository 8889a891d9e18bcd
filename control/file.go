// control/file.go
// Author: momentics <momentics@gmail.com>
//
// JSON file source for ConfigStore documents.

package control

import (
	"fmt"
	"os"

	"github.com/sugawarayuuta/sonnet"
)

// LoadFile reads a JSON object from path into a config document. The top
// level must be an object; nested values keep their decoded types
// (float64 for numbers, per encoding/json conventions).
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("control: read config %s: %w", path, err)
	}
	doc := make(map[string]any)
	if err := sonnet.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("control: parse config %s: %w", path, err)
	}
	return doc, nil
}

// LoadFileInto loads path and merges the document into cs, firing its
// reload listeners once.
func LoadFileInto(cs *ConfigStore, path string) error {
	doc, err := LoadFile(path)
	if err != nil {
		return err
	}
	cs.SetConfig(doc)
	return nil
}
