// Package transport exposes the explorer over gRPC and HTTP.
package transport

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// SessionState reads the explorer session without mutating it.
type SessionState interface {
	Snapshot() service.State
	Stats() service.Stats
	LastPage() (service.Page, bool)
}

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	session SessionState
}

// NewExplorerHandler returns an ExplorerHandler reporting on session.
func NewExplorerHandler(session SessionState) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{session: session}
}

// Health reports server health. The gateway stays healthy while the store is
// unreachable; the description says what the session currently knows.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: describe(h.session.Snapshot()),
	}, nil
}

func describe(st service.State) string {
	if !st.Known {
		return "latest block not resolved"
	}
	return fmt.Sprintf("latest block #%d", st.Latest)
}
