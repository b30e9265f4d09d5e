package controllers

import (
	"net/http"
	"time"

	"github.com/anashany189-droid/ShareEstate1/insight"
	"github.com/anashany189-droid/ShareEstate1/utils"
)

type InsightsController struct {
	Cache *insight.MarketCache
}

func NewInsightsController(cache *insight.MarketCache) *InsightsController {
	return &InsightsController{Cache: cache}
}

// GET /v1/insights/market
//
// Serves the cached summary; the cron refresher keeps it warm so this never
// waits on the provider after the first call.
func (c *InsightsController) Market(w http.ResponseWriter, r *http.Request) {
	summary, updatedAt := c.Cache.Summary(r.Context())
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"summary":    summary,
			"updated_at": updatedAt.UTC().Format(time.RFC3339),
		},
	})
}
