// Corpus loading. The data directory carries a corpus.yml manifest naming the
// JSON files and the partition each belongs to; without a manifest the loader
// falls back to the well-known BBC scrape filenames.
package knowledge

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the optional corpus manifest inside the data
// directory.
const ManifestFile = "corpus.yml"

type manifest struct {
	Files []manifestEntry `yaml:"files"`
}

type manifestEntry struct {
	Path     string `yaml:"path"`
	Language string `yaml:"language"`
}

// defaultManifest mirrors the original corpus layout: one scrape file per
// Nigerian language plus the combined dataset.
var defaultManifest = []manifestEntry{
	{Path: "bbc_hausa_scraped.json", Language: "ha"},
	{Path: "bbc_pidgin_scraped.json", Language: "pcm"},
	{Path: "bbc_yoruba_scraped.json", Language: "yo"},
	{Path: "combined_wazobia_dataset.json", Language: PartitionAll},
}

// Load reads the corpus from dir and returns the partitioned Base.
//
// Missing or unreadable document files are skipped with a log line rather than
// failing the load — the agent degrades to "no context" answers for the
// affected partition. A malformed manifest is an error: it means the operator
// misconfigured the corpus, not that a scrape is stale.
func Load(dir string) (*Base, error) {
	entries, err := loadManifest(dir)
	if err != nil {
		return nil, err
	}

	partitions := map[string][]Document{
		"ha":         {},
		"pcm":        {},
		"yo":         {},
		PartitionAll: {},
	}

	for _, entry := range entries {
		docs, err := loadDocuments(filepath.Join(dir, entry.Path))
		if err != nil {
			log.Printf("knowledge: skipping %s: %v", entry.Path, err)
			continue
		}
		partitions[entry.Language] = append(partitions[entry.Language], docs...)
		log.Printf("knowledge: loaded %d documents from %s (%s)", len(docs), entry.Path, entry.Language)
	}

	return NewBase(partitions), nil
}

func loadManifest(dir string) ([]manifestEntry, error) {
	raw, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if os.IsNotExist(err) {
		return defaultManifest, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ManifestFile, err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestFile, err)
	}
	if len(m.Files) == 0 {
		return defaultManifest, nil
	}
	return m.Files, nil
}

// loadDocuments parses one corpus file. Files hold either a JSON array of
// documents or a single document object.
func loadDocuments(path string) ([]Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var docs []Document
	if err := json.Unmarshal(raw, &docs); err == nil {
		return docs, nil
	}

	var single Document
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return []Document{single}, nil
}
