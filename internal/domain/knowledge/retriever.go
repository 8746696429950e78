package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultTopK is the retrieval depth used when the caller passes 0.
const DefaultTopK = 5

// maxSnippetChars bounds each document's contribution to the context string.
// Counted in runes so a truncation never splits a multi-byte character.
const maxSnippetChars = 500

// EmptyContext is returned by BuildContext when retrieval found nothing. The
// agents pass it to the LLM verbatim so the model knows it must answer
// unaided.
const EmptyContext = "No relevant information found in knowledge base."

// Retriever selects corpus documents relevant to a query by token-set
// overlap.
type Retriever struct {
	base *Base
}

// NewRetriever creates a Retriever over the given corpus.
func NewRetriever(base *Base) *Retriever {
	return &Retriever{base: base}
}

// Retrieve returns up to topK documents from the language's partition (or the
// combined fallback) ranked by descending overlap between the query's token
// set and each document's title+text token set. Documents with zero overlap
// are never returned. Ties keep corpus order, so retrieval is deterministic
// for a fixed corpus.
func (r *Retriever) Retrieve(query, language string, topK int) []Document {
	if topK <= 0 {
		topK = DefaultTopK
	}

	docs := r.base.Docs(language)
	if len(docs) == 0 {
		return nil
	}

	queryWords := wordSet(query)

	type scoredDoc struct {
		score int
		doc   Document
	}
	scored := make([]scoredDoc, 0, len(docs))
	for _, doc := range docs {
		overlap := countOverlap(queryWords, doc.Text+" "+doc.Title)
		if overlap > 0 {
			scored = append(scored, scoredDoc{score: overlap, doc: doc})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	result := make([]Document, len(scored))
	for i, s := range scored {
		result[i] = s.doc
	}
	return result
}

// BuildContext assembles the retrieved documents into the context block
// injected into agent prompts. Each document renders as a numbered source
// header followed by its (truncated) text.
func BuildContext(docs []Document) string {
	if len(docs) == 0 {
		return EmptyContext
	}

	parts := make([]string, 0, len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = "Untitled"
		}
		source := doc.Source
		if source == "" {
			source = "unknown"
		}
		parts = append(parts, fmt.Sprintf("[Source %d: %s (%s)]\n%s", i+1, title, source, truncate(doc.Text, maxSnippetChars)))
	}
	return strings.Join(parts, "\n\n")
}

func wordSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func countOverlap(queryWords map[string]struct{}, docText string) int {
	count := 0
	for w := range wordSet(docText) {
		if _, ok := queryWords[w]; ok {
			count++
		}
	}
	return count
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
