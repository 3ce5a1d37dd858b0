package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wordquest/internal/models"
	"wordquest/internal/repository"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrItemAlreadyOwned  = errors.New("item already owned")
	ErrItemNotOwned      = errors.New("item not owned")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// ShopItem is a catalogue entry decorated with the player's state
type ShopItem struct {
	models.CharacterItem
	Owned    bool
	Equipped bool
}

// ShopService handles the cosmetic item catalogue and purchases
type ShopService struct {
	shop     *repository.ShopRepository
	progress *repository.ProgressRepository
}

// NewShopService creates a new shop service
func NewShopService(shop *repository.ShopRepository, progress *repository.ProgressRepository) *ShopService {
	return &ShopService{shop: shop, progress: progress}
}

// Catalogue returns all items with the player's owned/equipped flags
func (s *ShopService) Catalogue(userID string) ([]ShopItem, error) {
	items, err := s.shop.ListItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	inventory, err := s.shop.ListInventory(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	owned := make(map[string]bool, len(inventory))
	equipped := make(map[string]bool, len(inventory))
	for _, inv := range inventory {
		owned[inv.ItemID] = true
		equipped[inv.ItemID] = inv.Equipped
	}

	catalogue := make([]ShopItem, len(items))
	for i, item := range items {
		catalogue[i] = ShopItem{
			CharacterItem: item,
			Owned:         owned[item.ID],
			Equipped:      equipped[item.ID],
		}
	}
	return catalogue, nil
}

// Purchase buys an item for a player. Default items are free; anything
// else deducts coins from the player's balance.
func (s *ShopService) Purchase(userID, itemID string) error {
	item, err := s.shop.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}

	alreadyOwned, err := s.shop.Owns(userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to check ownership: %w", err)
	}
	if alreadyOwned {
		return ErrItemAlreadyOwned
	}

	if !item.IsDefault && item.CostCoins > 0 {
		paid, err := s.progress.SpendCoins(userID, item.CostCoins)
		if err != nil {
			return fmt.Errorf("failed to spend coins: %w", err)
		}
		if !paid {
			return ErrInsufficientCoins
		}
	}

	inv := &models.PlayerInventory{
		ID:     uuid.New().String(),
		UserID: userID,
		ItemID: itemID,
	}
	if err := s.shop.AddToInventory(inv); err != nil {
		return fmt.Errorf("failed to add to inventory: %w", err)
	}
	return nil
}

// Equip marks an owned item as the equipped one for its type
func (s *ShopService) Equip(userID, itemID string) error {
	item, err := s.shop.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}

	owned, err := s.shop.Owns(userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to check ownership: %w", err)
	}
	if !owned {
		return ErrItemNotOwned
	}

	if err := s.shop.Equip(userID, itemID, item.Type); err != nil {
		return fmt.Errorf("failed to equip item: %w", err)
	}
	return nil
}

// Character returns the player's currently equipped items
func (s *ShopService) Character(userID string) ([]models.CharacterItem, error) {
	items, err := s.shop.EquippedItems(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipped items: %w", err)
	}
	return items, nil
}
