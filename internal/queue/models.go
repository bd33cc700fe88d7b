package queue

// Snapshot is the queue state for one ticket at one location at a
// single point in time. It feeds the queue section of a booking result.
type Snapshot struct {
	// Waiting holds the ticket codes currently queued, oldest first,
	// up to and including the requested ticket (capped).
	Waiting []string `json:"waiting,omitempty"`
	// NowServing is the ticket code currently being served, if any.
	NowServing string `json:"now_serving,omitempty"`
	// TotalAhead is the number of tickets queued before the requested
	// one. For a ticket not in the queue it is the full queue length.
	TotalAhead int `json:"total_ahead"`
}

// Redis key helpers

// WaitingKey returns the sorted-set key holding a location's queue
func WaitingKey(locationID string) string {
	return "queue:waiting:" + locationID
}

// NowServingKey returns the key holding the ticket currently served
func NowServingKey(locationID string) string {
	return "queue:nowserving:" + locationID
}
