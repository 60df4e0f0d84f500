// Package cache implements the client-side search result cache: deterministic
// cache keys derived from query parameters, a result cache with read-time
// expiry layered over a kvstore.Store, and a bounded list of recent searches.
package cache

import (
	"encoding/json"
	"sort"
	"strconv"
)

// DefaultSort is the sort identifier used when a caller supplies none.
const DefaultSort = "default"

// Key derives a stable cache key for a query. Two calls with the same params
// (in any map iteration order), the same filters (in any order) and the same
// sort always produce the identical key.
//
// The key is prefix + decimal form of a 32-bit rolling hash over the
// normalized JSON serialization of the query. json.Marshal writes map keys in
// sorted order, which is what makes the serialization canonical.
func Key(prefix string, params map[string]any, filters []string, sortOpt string) string {
	return prefix + strconv.FormatInt(int64(hashQuery(params, filters, sortOpt)), 10)
}

func hashQuery(params map[string]any, filters []string, sortOpt string) int32 {
	normalized := make(map[string]any, len(params)+2)
	for k, v := range params {
		normalized[k] = v
	}
	normalized["filters"] = sortedCopy(filters)
	if sortOpt == "" {
		sortOpt = DefaultSort
	}
	normalized["sort"] = sortOpt

	// Marshal cannot fail for scalar params; non-serializable values are
	// outside the contract.
	b, _ := json.Marshal(normalized)
	return hash32(b)
}

// hash32 is the classic polynomial string hash with multiplier 31, truncated
// to 32 bits at every step. The result may be negative; the decimal form is
// still a stable identifier.
func hash32(b []byte) int32 {
	var h int32
	for _, c := range b {
		h = (h << 5) - h + int32(c)
	}
	return h
}

// sortedCopy sorts filters without mutating the caller's slice. A nil input
// yields an empty, non-nil slice so it always serializes as [].
func sortedCopy(filters []string) []string {
	out := make([]string, len(filters))
	copy(out, filters)
	sort.Strings(out)
	return out
}
