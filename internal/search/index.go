package search

import (
	"context"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"

	"lexfeed/internal/model"
)

// searchable user fields, stem-analyzed.
var userFields = []string{"name", "company", "email", "position", "location", "about"}

// userDocument is the indexed projection of a user.
type userDocument struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Location string `json:"location"`
	About    string `json:"about"`
}

// Index is the full-text index over user profiles. Writes are best-effort:
// the user service logs and continues when indexing fails, so the index is
// eventually consistent with the store, never authoritative.
type Index struct {
	idx bleve.Index
}

// Open opens the on-disk index at path, creating it on first run.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, err
	}
	return &Index{idx: idx}, nil
}

func buildMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Analyzer = en.AnalyzerName

	user := bleve.NewDocumentMapping()
	for _, field := range userFields {
		user.AddFieldMappingsAt(field, text)
	}

	m := bleve.NewIndexMapping()
	m.DefaultMapping = user
	return m
}

// IndexUser adds or replaces the user's document.
func (i *Index) IndexUser(u *model.User) error {
	doc := userDocument{
		Name:     u.Name,
		Company:  u.Company,
		Email:    u.Email,
		Position: u.Position,
		Location: u.Location,
		About:    u.About,
	}
	return i.idx.Index(docID(u.ID), doc)
}

// DeleteUser removes the user's document.
func (i *Index) DeleteUser(id uint) error {
	return i.idx.Delete(docID(id))
}

// Search runs a free-text match query across the indexed fields and returns
// the matching user ids in relevance order.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]uint, error) {
	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(res.Hits))
	for _, hit := range res.Hits {
		id, err := strconv.ParseUint(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// Close releases the index.
func (i *Index) Close() error {
	return i.idx.Close()
}

func docID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
