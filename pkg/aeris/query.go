package aeris

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents the query options shared by Aeris endpoint actions.
// Zero values are omitted from the encoded query string.
type QueryParams struct {
	// P describes the place for actions that take one (closest, search,
	// within), e.g. "austin,tx" or "30.26,-97.74".
	P string
	// Filter limits results using endpoint-specific named filters.
	Filter string
	// Query filters results on response properties, e.g. "place.country:us".
	Query string
	// Sort orders results on response properties, e.g. "dt:-1".
	Sort string
	// Radius bounds closest/within searches, e.g. "50mi".
	Radius string
	// MinDist sets the minimum distance between returned results.
	MinDist string
	// From and To bound the time period of interest, e.g. "-1hour", "now".
	From string
	To   string
	// Fields restricts the response to the named properties.
	Fields []string
	// Limit and Skip page through results.
	Limit int
	Skip  int
	// PLimit and PSkip page through the periods within each result.
	PLimit int
	PSkip  int
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithP sets the place parameter.
func (q *QueryParams) WithP(p string) *QueryParams {
	q.P = p

	return q
}

// WithFilter sets the filter parameter.
func (q *QueryParams) WithFilter(filter string) *QueryParams {
	q.Filter = filter

	return q
}

// WithQuery sets the query parameter.
func (q *QueryParams) WithQuery(query string) *QueryParams {
	q.Query = query

	return q
}

// WithSort sets the sort parameter.
func (q *QueryParams) WithSort(sort string) *QueryParams {
	q.Sort = sort

	return q
}

// WithRadius sets the radius parameter.
func (q *QueryParams) WithRadius(radius string) *QueryParams {
	q.Radius = radius

	return q
}

// WithMinDist sets the minimum distance between returned results.
func (q *QueryParams) WithMinDist(minDist string) *QueryParams {
	q.MinDist = minDist

	return q
}

// WithFrom sets the start of the time period of interest.
func (q *QueryParams) WithFrom(from string) *QueryParams {
	q.From = from

	return q
}

// WithTo sets the end of the time period of interest.
func (q *QueryParams) WithTo(to string) *QueryParams {
	q.To = to

	return q
}

// WithLimit sets the limit parameter.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithSkip sets the skip parameter.
func (q *QueryParams) WithSkip(skip int) *QueryParams {
	q.Skip = skip

	return q
}

// WithPLimit limits the periods returned within each result.
func (q *QueryParams) WithPLimit(plimit int) *QueryParams {
	q.PLimit = plimit

	return q
}

// WithPSkip skips periods within each result.
func (q *QueryParams) WithPSkip(pskip int) *QueryParams {
	q.PSkip = pskip

	return q
}

// WithFields restricts the response to the named properties.
func (q *QueryParams) WithFields(fields ...string) *QueryParams {
	q.Fields = fields

	return q
}

// ToValues converts the parameters to url.Values for the query string.
// Fields are joined with commas, the encoding the API expects.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	setNonEmpty := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	setPositive := func(key string, value int) {
		if value > 0 {
			values.Set(key, strconv.Itoa(value))
		}
	}

	setNonEmpty("p", q.P)
	setNonEmpty("filter", q.Filter)
	setNonEmpty("query", q.Query)
	setNonEmpty("sort", q.Sort)
	setNonEmpty("radius", q.Radius)
	setNonEmpty("mindist", q.MinDist)
	setNonEmpty("from", q.From)
	setNonEmpty("to", q.To)

	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}

	setPositive("limit", q.Limit)
	setPositive("skip", q.Skip)
	setPositive("plimit", q.PLimit)
	setPositive("pskip", q.PSkip)

	return values
}
