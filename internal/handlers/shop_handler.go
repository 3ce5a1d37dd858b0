package handlers

import (
	"errors"
	"net/http"

	"wordquest/internal/models"
	"wordquest/internal/service"
)

// ShopHandler handles the cosmetic shop endpoints
type ShopHandler struct {
	shop *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shop *service.ShopService) *ShopHandler {
	return &ShopHandler{shop: shop}
}

// Items handles GET /api/shop/items
func (h *ShopHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.shop.Catalogue(UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list items", err)
		return
	}

	out := make([]map[string]interface{}, len(items))
	for i, item := range items {
		out[i] = map[string]interface{}{
			"id":        item.ID,
			"name":      item.Name,
			"type":      string(item.Type),
			"assetKey":  item.AssetKey,
			"costCoins": item.CostCoins,
			"isDefault": item.IsDefault,
			"owned":     item.Owned,
			"equipped":  item.Equipped,
		}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"items": out})
}

// Purchase handles POST /api/shop/purchase
func (h *ShopHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := decodeJSON(r, &req); err != nil || req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "itemId is required", nil)
		return
	}

	err := h.shop.Purchase(UserID(r), req.ItemID)
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Item not found", nil)
		return
	case errors.Is(err, service.ErrItemAlreadyOwned):
		respondError(w, http.StatusConflict, "Item already owned", nil)
		return
	case errors.Is(err, service.ErrInsufficientCoins):
		respondError(w, http.StatusPaymentRequired, "Not enough coins", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to purchase item", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"purchased": req.ItemID})
}

// Equip handles POST /api/shop/equip
func (h *ShopHandler) Equip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := decodeJSON(r, &req); err != nil || req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "itemId is required", nil)
		return
	}

	err := h.shop.Equip(UserID(r), req.ItemID)
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Item not found", nil)
		return
	case errors.Is(err, service.ErrItemNotOwned):
		respondError(w, http.StatusForbidden, "Item not owned", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to equip item", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"equipped": req.ItemID})
}

// Character handles GET /api/shop/character
func (h *ShopHandler) Character(w http.ResponseWriter, r *http.Request) {
	items, err := h.shop.Character(UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load character", err)
		return
	}

	out := make([]map[string]interface{}, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"character": out})
}

func toItemResponse(item models.CharacterItem) map[string]interface{} {
	return map[string]interface{}{
		"id":        item.ID,
		"name":      item.Name,
		"type":      string(item.Type),
		"assetKey":  item.AssetKey,
		"costCoins": item.CostCoins,
		"isDefault": item.IsDefault,
	}
}
