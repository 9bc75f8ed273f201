package dashboard

import "context"

// Service defines the dashboard operations
type Service interface {
	// GetDashboard runs the snapshot reads, the dependent shift lookup and
	// the aggregation pipeline, and returns the combined payload. The
	// response is computed whole or the request fails; there is no partial
	// success.
	GetDashboard(ctx context.Context, q Query) (*DashboardResponse, error)
}
