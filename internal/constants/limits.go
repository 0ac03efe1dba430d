package constants

const (
	// Page size bounds for the trending endpoint
	DefaultLimit = 20
	MaxLimit     = 100

	// Extra rows requested from each provider beyond limit+offset. Reduces
	// underflow on paginated requests against a cold cache; not an exactness
	// guarantee for every offset/limit combination.
	FetchPadding = 10

	// Maximum live rows pulled from a platform per poll cycle
	PollFetchSize = 100
)
