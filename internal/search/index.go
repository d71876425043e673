package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/cjk"
	"github.com/blevesearch/bleve/v2/mapping"

	"animehub-backend/internal/domain/guides"
)

// Index wraps an in-memory bleve index over guide drafts. It is rebuilt from
// the repository at startup and kept current by the draft use cases.
type Index struct {
	index bleve.Index
}

// IndexedDraft is the searchable projection of a draft.
type IndexedDraft struct {
	ID      string
	Title   string
	Excerpt string
	Content string
}

// Result is one search hit.
type Result struct {
	ID        string
	Title     string
	Score     float64
	Fragments map[string][]string
}

// Open creates an empty in-memory index.
func Open() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()

	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = "cjk" // titles are mostly Japanese

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("ID", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Title", titleFieldMapping)
	docMapping.AddFieldMappingsAt("Excerpt", textFieldMapping)
	docMapping.AddFieldMappingsAt("Content", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

func (i *Index) Close() error {
	return i.index.Close()
}

// IndexDraft adds or updates a draft in the index.
func (i *Index) IndexDraft(d *guides.GuideDraft) error {
	return i.index.Index(d.ID, &IndexedDraft{
		ID:      d.ID,
		Title:   d.Title,
		Excerpt: d.Excerpt,
		Content: d.Content,
	})
}

// Delete removes a draft from the index.
func (i *Index) Delete(id string) error {
	return i.index.Delete(id)
}

// Search runs a query-string query with highlighted fragments.
func (i *Index) Search(queryStr string, limit int) ([]*Result, error) {
	query := bleve.NewQueryStringQuery(queryStr)

	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	req.Highlight = bleve.NewHighlightWithStyle("html")
	req.Fields = []string{"Title"}

	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var results []*Result
	for _, hit := range res.Hits {
		r := &Result{ID: hit.ID, Score: hit.Score, Fragments: hit.Fragments}
		if title, ok := hit.Fields["Title"].(string); ok {
			r.Title = title
		}
		results = append(results, r)
	}
	return results, nil
}

// Rebuild reindexes all drafts in one batch.
func (i *Index) Rebuild(drafts []*guides.GuideDraft) error {
	batch := i.index.NewBatch()
	for _, d := range drafts {
		doc := &IndexedDraft{ID: d.ID, Title: d.Title, Excerpt: d.Excerpt, Content: d.Content}
		if err := batch.Index(doc.ID, doc); err != nil {
			return fmt.Errorf("batch index %s: %w", d.ID, err)
		}
	}
	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// Count returns the number of indexed drafts.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}
