package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/fashionbrand/storefront/internal/logging"
	"github.com/fashionbrand/storefront/internal/models"
)

// ProductDoc is the indexed shape of a product. Only what search needs.
type ProductDoc struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func DocFromProduct(p *models.Product) ProductDoc {
	return ProductDoc{ID: p.ID, Name: p.Name, Slug: p.Slug, Description: p.Description}
}

func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []ProductDoc, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source ProductDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	docs := make([]ProductDoc, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		docs[i] = hit.Source
	}
	return r.Hits.Total.Value, docs, nil
}

// IndexProduct upserts a product document. Best-effort: callers log and
// continue on failure, the catalog of record is the database.
func IndexProduct(ctx context.Context, es *elasticsearch.Client, index string, p *models.Product) error {
	if es == nil {
		return nil
	}

	data, err := json.Marshal(DocFromProduct(p))
	if err != nil {
		return err
	}

	res, err := es.Index(
		index,
		bytes.NewReader(data),
		es.Index.WithContext(ctx),
		es.Index.WithDocumentID(fmt.Sprint(p.ID)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index product: %s", res.Status())
	}
	return nil
}

func DeleteProduct(ctx context.Context, es *elasticsearch.Client, index string, id uint) error {
	if es == nil {
		return nil
	}

	res, err := es.Delete(index, fmt.Sprint(id), es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	// 404 just means the product was never indexed.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete product: %s", res.Status())
	}
	return nil
}

// LogIndexErr reports a best-effort indexing failure without failing the
// admin write that triggered it.
func LogIndexErr(ctx context.Context, op string, err error) {
	if err == nil {
		return
	}
	logging.FromContext(ctx).Warn("es_index_error", "op", op, "error", strings.TrimSpace(err.Error()))
}
