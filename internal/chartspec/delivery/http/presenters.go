package http

import "dashgen/internal/chartspec"

// --- Response DTOs ---

type dashboardResp struct {
	Charts chartspec.DashboardConfig `json:"charts"`
}

func (h *handler) newDashboardResp(cfg chartspec.DashboardConfig) dashboardResp {
	return dashboardResp{Charts: cfg}
}
