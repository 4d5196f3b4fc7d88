package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ContentPack is a set of extra lessons for one language, loaded from a
// JSON file supplied by the user.
type ContentPack struct {
	LanguageCode string   `json:"languageCode"`
	Lessons      []Lesson `json:"lessons"`
}

var (
	compiledPackSchema *jsonschema.Schema
	packSchemaOnce     sync.Once
	packSchemaErr      error
)

// compilePackSchema compiles the content pack schema once.
func compilePackSchema() (*jsonschema.Schema, error) {
	packSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get a clean
		// representation.
		defBytes, err := json.Marshal(packSchema)
		if err != nil {
			packSchemaErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			packSchemaErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://content-pack.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			packSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledPackSchema, packSchemaErr = c.Compile(schemaURL)
	})
	return compiledPackSchema, packSchemaErr
}

// ParsePack validates raw JSON against the content pack schema and
// decodes it.
func ParsePack(raw []byte) (*ContentPack, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compilePackSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("content pack rejected: %w", err)
	}

	var pack ContentPack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("decode content pack: %w", err)
	}
	return &pack, nil
}

// LoadPack reads, validates and merges a content pack file into the
// catalog. The pack's language must already exist; lesson numbers must
// not collide with existing lessons.
func (c *Catalog) LoadPack(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content pack: %w", err)
	}

	pack, err := ParsePack(raw)
	if err != nil {
		return err
	}

	if c.Language(pack.LanguageCode) == nil {
		return fmt.Errorf("unknown language %q in content pack", pack.LanguageCode)
	}

	lessons := make([]Lesson, len(pack.Lessons))
	for i, l := range pack.Lessons {
		l.LanguageCode = pack.LanguageCode
		lessons[i] = l
	}
	return c.addLessons(pack.LanguageCode, lessons)
}
