package observer

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Remote is an optional Market implementation that fetches scalar quotes
// over HTTP from a market-data provider, built on resty (the pack's HTTP
// client of choice) with an x/time/rate limiter guarding outbound request
// volume. It satisfies the same Market interface as the in-memory
// variants and composes into a Composite alongside them. Remote is never
// required by the deterministic cross-validation suite; it exists so a
// caller can back an ACTUS simulation with live data without the engine
// itself depending on any particular provider's wire format.
type Remote struct {
	client  *resty.Client
	limiter *rate.Limiter
	baseURL string
}

// RemoteQuote is the minimal response shape a provider endpoint is
// expected to return for GET {baseURL}/{identifier}?at=RFC3339.
type RemoteQuote struct {
	Identifier string  `json:"identifier"`
	Value      float64 `json:"value"`
}

// NewRemote builds a Remote observer. ratePerSecond bounds outbound
// request throughput (burst of 1); a caller fetching many identifiers
// should prefer batching at the provider rather than raising this.
func NewRemote(baseURL string, ratePerSecond float64) *Remote {
	return &Remote{
		client:  resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
		baseURL: baseURL,
	}
}

// Get implements Market. A request failure or non-2xx response is treated
// as "no opinion" (returns 0) to preserve Market's totality contract;
// callers that need to distinguish failure from a legitimate zero should
// use Lookup instead.
func (r *Remote) Get(identifier string, t time.Time) float64 {
	v, _ := r.Lookup(identifier, t)
	return v
}

func (r *Remote) Lookup(identifier string, t time.Time) (float64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := r.limiter.Wait(ctx); err != nil {
		return 0, false
	}

	var quote RemoteQuote
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("at", t.Format(time.RFC3339)).
		SetResult(&quote).
		Get("/" + identifier)
	if err != nil || resp.IsError() {
		return 0, false
	}
	return quote.Value, true
}
