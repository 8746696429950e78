// Package knowledge holds the document corpus the agents ground factual
// answers in, plus the keyword-overlap retriever that selects context for a
// query. Retrieval is deliberately simple — token-set overlap, no embeddings —
// so the corpus can be swapped or regenerated without a reindex step.
package knowledge

// Document is one corpus entry. Extra JSON fields in the source files are
// ignored on load.
type Document struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Source   string `json:"source"`
	URL      string `json:"url,omitempty"`
	Language string `json:"language,omitempty"`
}

// PartitionAll is the combined partition used as fallback when a language has
// no documents of its own.
const PartitionAll = "all"

// Base is the loaded corpus, partitioned by language code.
// Built once at startup and never mutated afterwards, so it is safe to share
// across concurrent retrieval calls.
type Base struct {
	partitions map[string][]Document
}

// NewBase builds a Base from explicit partitions. The loader is the usual
// constructor; this one exists for tests and in-memory corpora.
func NewBase(partitions map[string][]Document) *Base {
	if partitions == nil {
		partitions = map[string][]Document{}
	}
	return &Base{partitions: partitions}
}

// Docs returns the documents for a language, falling back to the combined
// partition when the language has none.
func (b *Base) Docs(language string) []Document {
	if docs := b.partitions[language]; len(docs) > 0 {
		return docs
	}
	return b.partitions[PartitionAll]
}

// Sizes reports the document count per partition, for the stats endpoint.
func (b *Base) Sizes() map[string]int {
	sizes := make(map[string]int, len(b.partitions))
	for lang, docs := range b.partitions {
		sizes[lang] = len(docs)
	}
	return sizes
}
