package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anashany189-droid/ShareEstate1/insight"
	"github.com/anashany189-droid/ShareEstate1/models"
	"github.com/anashany189-droid/ShareEstate1/store"
	"github.com/anashany189-droid/ShareEstate1/utils"
)

// propertyView decorates a property with its clamped funding progress for
// the listing and detail views.
type propertyView struct {
	models.Property
	Progress float64 `json:"progress"`
}

func newPropertyView(p models.Property) propertyView {
	return propertyView{Property: p, Progress: p.Progress()}
}

type PropertiesController struct {
	Store   *store.Store
	Insight insight.Provider
}

func NewPropertiesController(st *store.Store, provider insight.Provider) *PropertiesController {
	return &PropertiesController{Store: st, Insight: provider}
}

// GET /v1/properties
func (c *PropertiesController) List(w http.ResponseWriter, r *http.Request) {
	properties := c.Store.Catalog.List()
	views := make([]propertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, newPropertyView(p))
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: views})
}

// GET /v1/properties/{id}
func (c *PropertiesController) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	property, ok := c.Store.Catalog.FindByID(id)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Property not found", Code: "NOT_FOUND"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: newPropertyView(property)})
}

// POST /v1/properties/{id}/analyze
//
// Always answers 200 with prose: the insight provider is wrapped so its
// failures degrade to a static text instead of an error.
func (c *PropertiesController) Analyze(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	property, ok := c.Store.Catalog.FindByID(id)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Property not found", Code: "NOT_FOUND"})
		return
	}

	analysis, err := c.Insight.AnalyzeProperty(r.Context(), property)
	if err != nil {
		// Only reachable with an unwrapped provider.
		analysis = insight.FallbackAnalysis
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"property_id": property.ID,
			"analysis":    analysis,
		},
	})
}
