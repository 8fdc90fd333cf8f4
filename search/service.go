package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/mitchellh/mapstructure"

	"shopwidget.GO/model"
)

// Searcher is the search collaborator contract: exact-UPC lookup, optionally
// ranked by distance from the requester. Filtering is delegated entirely to
// the backend; callers only rank and display what comes back.
type Searcher interface {
	Search(ctx context.Context, upc string, near *model.GeoPoint) ([]model.Candidate, error)
}

var (
	serviceInstance *Service
	serviceOnce     sync.Once
)

// GetService returns the singleton Elasticsearch-backed Service.
func GetService() *Service {
	serviceOnce.Do(func() {
		serviceInstance = NewService()
	})
	return serviceInstance
}

// Service queries the store-offers Elasticsearch index.
type Service struct {
	client *elasticsearch.Client
	prefix string
}

func NewService() *Service {
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		host = "http://localhost:9200"
	}
	prefix := os.Getenv("ELASTICSEARCH_INDEX_PREFIX")
	if prefix == "" {
		prefix = "widget"
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &Service{prefix: prefix}
	}

	return &Service{
		client: client,
		prefix: prefix,
	}
}

// Search queries index {prefix}_store_offers with an exact UPC term filter.
// When near is non-nil the hits are geo-sorted and each hit carries its
// distance in meters; otherwise distances stay unknown.
func (s *Service) Search(ctx context.Context, upc string, near *model.GeoPoint) ([]model.Candidate, error) {
	if s.client == nil {
		return nil, fmt.Errorf("elasticsearch not configured")
	}
	if upc == "" {
		return []model.Candidate{}, nil
	}

	body := map[string]interface{}{
		"size": 20,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{"term": map[string]interface{}{"upc": upc}},
				},
			},
		},
	}
	if near != nil {
		body["sort"] = []map[string]interface{}{
			{
				"_geo_distance": map[string]interface{}{
					"geoloc": map[string]float64{"lat": near.Lat, "lon": near.Lng},
					"order":  "asc",
					"unit":   "m",
				},
			},
		}
	}

	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(fmt.Sprintf("%s_store_offers", s.prefix)),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				ID     string                 `json:"_id"`
				Source map[string]interface{} `json:"_source"`
				Sort   []float64              `json:"sort"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	hits := make([]model.Candidate, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		cand, err := decodeHit(hit.Source)
		if err != nil {
			continue
		}
		if cand.ID == "" {
			cand.ID = hit.ID
		}
		// Geo-sorted responses carry the distance as the first sort value.
		// Elasticsearch reports "infinity" for docs without a geoloc.
		if near != nil && len(hit.Sort) > 0 && hit.Sort[0] >= 0 && !isInf(hit.Sort[0]) {
			d := hit.Sort[0]
			cand.DistanceMeters = &d
		}
		hits = append(hits, cand)
	}
	return hits, nil
}

func isInf(f float64) bool {
	return f > 1e15
}

// decodeHit maps an ES _source document onto a Candidate. The index stores
// numbers loosely (floats for counts), so decoding is weakly typed.
func decodeHit(source map[string]interface{}) (model.Candidate, error) {
	var cand model.Candidate
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Result:           &cand,
	})
	if err != nil {
		return cand, err
	}
	if err := dec.Decode(source); err != nil {
		return cand, err
	}
	return cand, nil
}
