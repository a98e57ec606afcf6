package feedsync

// Result mirrors the response shape the invoking runtime expects: a
// numeric status code and a human-readable body naming the destination.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
