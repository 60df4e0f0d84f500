// Package products wraps the remote marketplace products API and the
// cache-or-fetch data loader the search screens use.
package products

import "encoding/json"

// Product is one marketplace listing. Nullable fields stay pointers so absent
// and zero values survive the round trip.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Condition   *string  `json:"productage,omitempty"`
	SellingType *string  `json:"sellingtype,omitempty"`
	Description string   `json:"description,omitempty"`
	University  string   `json:"university,omitempty"`
	City        string   `json:"city,omitempty"`
	Zipcode     string   `json:"zipcode,omitempty"`
	Images      []string `json:"imageUrls,omitempty"`
	PostedDate  string   `json:"postedDate,omitempty"`
}

// SearchResult is one page of results plus pagination metadata.
type SearchResult struct {
	Products     []Product `json:"products"`
	TotalItems   int       `json:"totalItems,omitempty"`
	TotalPages   int       `json:"totalPages,omitempty"`
	HasMorePages bool      `json:"hasMorePages,omitempty"`
}

// UnmarshalJSON accepts both response shapes the API serves: a bare JSON
// array of products, or the paginated object.
func (r *SearchResult) UnmarshalJSON(b []byte) error {
	var items []Product
	if err := json.Unmarshal(b, &items); err == nil {
		r.Products = items
		r.TotalItems = len(items)
		r.TotalPages = 1
		r.HasMorePages = false
		return nil
	}

	type alias SearchResult
	var obj alias
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*r = SearchResult(obj)
	return nil
}

// SearchParams are the query parameters a search screen assembles.
type SearchParams struct {
	Query      string
	University string
	City       string
	Zipcode    string
	Category   string
	Page       int
	Size       int
}

// Map flattens the params into the form the cache key generator consumes.
// Zero-valued fields are omitted so "no university" and an absent field key
// identically.
func (p SearchParams) Map() map[string]any {
	m := make(map[string]any, 7)
	if p.Query != "" {
		m["query"] = p.Query
	}
	if p.University != "" {
		m["university"] = p.University
	}
	if p.City != "" {
		m["city"] = p.City
	}
	if p.Zipcode != "" {
		m["zipcode"] = p.Zipcode
	}
	if p.Category != "" {
		m["category"] = p.Category
	}
	if p.Page > 0 {
		m["page"] = p.Page
	}
	if p.Size > 0 {
		m["size"] = p.Size
	}
	return m
}
