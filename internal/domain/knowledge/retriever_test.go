package knowledge

import (
	"strings"
	"testing"
)

func testBase() *Base {
	return NewBase(map[string][]Document{
		"ha": {
			{Title: "History of Lagos", Text: "Lagos became the colonial capital and grew into the largest city", Source: "bbc_hausa"},
			{Title: "Kano city walls", Text: "Kano ancient walls trade routes kola", Source: "bbc_hausa"},
		},
		PartitionAll: {
			{Title: "Nigeria overview", Text: "Nigeria is a federal republic in West Africa", Source: "combined"},
		},
	})
}

func TestRetrieve_OverlapRankingExcludesZeroOverlap(t *testing.T) {
	r := NewRetriever(testBase())

	docs := r.Retrieve("history of Lagos", "ha", 5)
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1 (Kano doc shares no tokens with the query)", len(docs))
	}
	if docs[0].Title != "History of Lagos" {
		t.Errorf("top document = %q, want the Lagos history doc", docs[0].Title)
	}
}

func TestRetrieve_HigherOverlapRanksFirst(t *testing.T) {
	base := NewBase(map[string][]Document{
		"en": {
			{Title: "one", Text: "jollof"},
			{Title: "two", Text: "jollof rice recipe party"},
		},
	})
	r := NewRetriever(base)

	docs := r.Retrieve("jollof rice recipe", "en", 5)
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].Title != "two" {
		t.Errorf("top document = %q, want %q (3 overlapping tokens vs 1)", docs[0].Title, "two")
	}
}

func TestRetrieve_TieKeepsCorpusOrder(t *testing.T) {
	base := NewBase(map[string][]Document{
		"en": {
			{Title: "first", Text: "suya spot"},
			{Title: "second", Text: "suya stand"},
		},
	})
	r := NewRetriever(base)

	docs := r.Retrieve("suya", "en", 5)
	if len(docs) != 2 || docs[0].Title != "first" || docs[1].Title != "second" {
		t.Errorf("tie order = %v, want corpus order preserved", titles(docs))
	}
}

func TestRetrieve_TopKCapAndDefault(t *testing.T) {
	docs := make([]Document, 8)
	for i := range docs {
		docs[i] = Document{Title: "doc", Text: "okada"}
	}
	r := NewRetriever(NewBase(map[string][]Document{"en": docs}))

	if got := r.Retrieve("okada", "en", 3); len(got) != 3 {
		t.Errorf("topK=3 returned %d documents", len(got))
	}
	if got := r.Retrieve("okada", "en", 0); len(got) != DefaultTopK {
		t.Errorf("topK=0 returned %d documents, want default %d", len(got), DefaultTopK)
	}
}

func TestRetrieve_FallsBackToCombinedPartition(t *testing.T) {
	r := NewRetriever(testBase())

	// "yo" has no partition of its own — the combined partition serves it.
	docs := r.Retrieve("federal republic", "yo", 5)
	if len(docs) != 1 || docs[0].Title != "Nigeria overview" {
		t.Errorf("fallback retrieval = %v, want the combined-partition doc", titles(docs))
	}
}

func TestRetrieve_EmptyCorpus(t *testing.T) {
	r := NewRetriever(NewBase(nil))
	if docs := r.Retrieve("anything", "ha", 5); len(docs) != 0 {
		t.Errorf("empty corpus returned %d documents", len(docs))
	}
}

func TestBuildContext_EmptySentinel(t *testing.T) {
	if got := BuildContext(nil); got != EmptyContext {
		t.Errorf("BuildContext(nil) = %q, want sentinel", got)
	}
}

func TestBuildContext_FormatAndDefaults(t *testing.T) {
	got := BuildContext([]Document{
		{Title: "Lagos", Text: "coastal city", Source: "bbc"},
		{Text: "no header fields"},
	})

	if !strings.Contains(got, "[Source 1: Lagos (bbc)]\ncoastal city") {
		t.Errorf("missing formatted first source in:\n%s", got)
	}
	if !strings.Contains(got, "[Source 2: Untitled (unknown)]") {
		t.Errorf("missing defaulted second header in:\n%s", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Errorf("sources must be blank-line separated:\n%s", got)
	}
}

func TestBuildContext_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("ẹ", 600) // runes, not bytes
	got := BuildContext([]Document{{Title: "t", Text: long, Source: "s"}})

	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated text must end with ellipsis")
	}
	body := strings.SplitN(got, "\n", 2)[1]
	if n := len([]rune(strings.TrimSuffix(body, "..."))); n != 500 {
		t.Errorf("truncated body is %d runes, want 500", n)
	}
}

func titles(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Title
	}
	return out
}
