package stats

// LocationQueueStats describes one location's live queue.
type LocationQueueStats struct {
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	QueueLength  int64  `json:"queue_length"`
	NowServing   string `json:"now_serving,omitempty"`
}

// DashboardStats is the admin overview of the day's activity.
type DashboardStats struct {
	BookingsToday   int64                `json:"bookings_today"`
	ServedToday     int64                `json:"served_today"`
	CancelledToday  int64                `json:"cancelled_today"`
	ActiveLocations int                  `json:"active_locations"`
	Queues          []LocationQueueStats `json:"queues"`
}
