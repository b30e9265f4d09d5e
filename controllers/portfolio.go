package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anashany189-droid/ShareEstate1/store"
	"github.com/anashany189-droid/ShareEstate1/utils"
)

type PortfolioController struct {
	Store *store.Store
}

func NewPortfolioController(st *store.Store) *PortfolioController {
	return &PortfolioController{Store: st}
}

type InvestRequest struct {
	PropertyID string  `json:"property_id"`
	Amount     float64 `json:"amount"`
}

// holding aggregates the investor's records per property for the dashboard.
type holding struct {
	PropertyID   string  `json:"property_id"`
	Title        string  `json:"title"`
	Invested     float64 `json:"invested"`
	CurrentValue float64 `json:"current_value"`
	Positions    int     `json:"positions"`
}

// GET /v1/portfolio
func (c *PortfolioController) Get(w http.ResponseWriter, r *http.Request) {
	profile := c.Store.Ledger.Profile()
	records := c.Store.Ledger.Records()

	byProperty := make(map[string]*holding)
	var order []string
	for _, rec := range records {
		h, ok := byProperty[rec.PropertyID]
		if !ok {
			title := rec.PropertyID
			if p, found := c.Store.Catalog.FindByID(rec.PropertyID); found {
				title = p.Title
			}
			h = &holding{PropertyID: rec.PropertyID, Title: title}
			byProperty[rec.PropertyID] = h
			order = append(order, rec.PropertyID)
		}
		h.Invested = utils.RoundFloat(h.Invested+rec.AmountInvested, 2)
		h.CurrentValue = utils.RoundFloat(h.CurrentValue+rec.CurrentValue, 2)
		h.Positions++
	}
	holdings := make([]holding, 0, len(order))
	for _, id := range order {
		holdings = append(holdings, *byProperty[id])
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"profile":     profile,
			"investments": records,
			"holdings":    holdings,
		},
	})
}

// GET /v1/portfolio/transactions
func (c *PortfolioController) Transactions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    c.Store.Ledger.Transactions(),
	})
}

// POST /v1/invest
func (c *PortfolioController) Invest(w http.ResponseWriter, r *http.Request) {
	var req InvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Not valid JSON"})
		return
	}
	if req.PropertyID == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "property_id is required"})
		return
	}

	result, err := c.Store.ExecuteInvestment(req.PropertyID, req.Amount)
	if err != nil {
		c.writeInvestError(w, req, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully invested %.0f EGP in %s", result.Record.AmountInvested, result.Property.Title),
		Data: map[string]interface{}{
			"profile":  result.Profile,
			"record":   result.Record,
			"property": newPropertyView(result.Property),
		},
	})
}

func (c *PortfolioController) writeInvestError(w http.ResponseWriter, req InvestRequest, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Property not found", Code: "NOT_FOUND"})
	case errors.Is(err, store.ErrBelowMinimum):
		msg := "Amount is below the minimum investment"
		if p, ok := c.Store.Catalog.FindByID(req.PropertyID); ok {
			msg = fmt.Sprintf("Minimum investment is %.0f EGP", p.MinInvestment)
		}
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg, Code: "BELOW_MINIMUM"})
	case errors.Is(err, store.ErrInsufficientFunds):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Insufficient funds in wallet", Code: "INSUFFICIENT_FUNDS"})
	case errors.Is(err, store.ErrPropertyClosed):
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "This property is no longer open for funding", Code: "PROPERTY_CLOSED"})
	default:
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Something went wrong, please try again"})
	}
}
