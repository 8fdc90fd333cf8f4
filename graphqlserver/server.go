package graphqlserver

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"shopwidget.GO/graphql"
	"shopwidget.GO/model"
	"shopwidget.GO/search"
)

// RootResolver is the root for graphql-go. The widget's GraphQL surface is
// read-only: host pages query ranked offers, order state stays on the JSON API.
type RootResolver struct {
	Searcher search.Searcher
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{searcher: r.Searcher}
}

// QueryResolver implements Query fields.
type QueryResolver struct {
	searcher search.Searcher
}

// Offer mirrors model.Candidate with graphql-go field types.
type Offer struct {
	ID             gql.ID
	Vendor         *string
	ProductName    *string
	UnitPrice      *float64
	UPC            *string
	StoreName      *string
	OnHandQuantity *int32
	Category       *string
	DistanceMeters *float64
	DistanceMiles  *string
}

// OffersArgs matches the offers query arguments.
type OffersArgs struct {
	Upc string
}

func (r *QueryResolver) Offers(ctx context.Context, args OffersArgs) ([]*Offer, error) {
	hits, err := r.searcher.Search(ctx, args.Upc, nil)
	if err != nil {
		return nil, err
	}
	ranked := search.Rank(hits)
	offers := make([]*Offer, 0, len(ranked))
	for i := range ranked {
		offers = append(offers, toOffer(&ranked[i]))
	}
	return offers, nil
}

func (r *QueryResolver) Health() string {
	return "ok"
}

func toOffer(c *model.Candidate) *Offer {
	o := &Offer{
		ID:             gql.ID(c.ID),
		Vendor:         c.Vendor,
		ProductName:    c.ProductName,
		UnitPrice:      c.UnitPrice,
		UPC:            c.UPC,
		StoreName:      c.StoreName,
		Category:       c.Category,
		DistanceMeters: c.DistanceMeters,
	}
	if c.OnHandQuantity != nil {
		n := int32(*c.OnHandQuantity)
		o.OnHandQuantity = &n
	}
	if miles := c.DistanceMiles(); miles != "" {
		o.DistanceMiles = &miles
	}
	return o
}

// NewSchema parses the schema against the root resolver.
func NewSchema(searcher search.Searcher) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Searcher: searcher}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
