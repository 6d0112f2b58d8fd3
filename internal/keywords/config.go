package keywords

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"aml/token"
)

// Config is the YAML shape of a keyword table file:
//
//	extends: default
//	keywords:
//	  variabile: VARIABLE
//	  pacchetto: PACKET
type Config struct {
	// Extends names a base table. Only "default" or "" are accepted.
	Extends string `yaml:"extends"`
	// Keywords maps a spelling to a reserved kind name.
	Keywords map[string]string `yaml:"keywords"`
}

const extendsDefault = "default"

// Load decodes a keyword table from YAML. Unknown fields are rejected.
func Load(r io.Reader) (*Table, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("keyword table is empty")
		}
		return nil, fmt.Errorf("failed to parse keyword table: %w", err)
	}
	return cfg.Table()
}

// LoadFile reads and decodes the keyword table at path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword table %s: %w", path, err)
	}
	t, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Table builds the keyword table described by the configuration.
func (c Config) Table() (*Table, error) {
	var t *Table
	switch c.Extends {
	case "":
		t = &Table{words: make(map[string]entry, len(c.Keywords))}
	case extendsDefault:
		t = Default()
	default:
		return nil, fmt.Errorf("unknown base table %q", c.Extends)
	}

	if len(c.Keywords) == 0 && c.Extends == "" {
		return nil, fmt.Errorf("keyword table defines no keywords")
	}

	for spelling, name := range c.Keywords {
		kind, ok := token.LookupKind(name)
		if !ok {
			return nil, fmt.Errorf("keyword %q: unknown kind %q", spelling, name)
		}
		if err := t.add(spelling, kind, groupOf(kind)); err != nil {
			return nil, err
		}
	}
	return t, nil
}
