package repository

import (
	"database/sql"

	"wordquest/internal/database"
	"wordquest/internal/models"
)

// ShopRepository handles character item and inventory database operations
type ShopRepository struct {
	db *database.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *database.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// ListItems returns the full catalogue ordered by cost
func (r *ShopRepository) ListItems() ([]models.CharacterItem, error) {
	query := `
		SELECT id, name, type, asset_key, cost_coins, is_default
		FROM character_items
		ORDER BY cost_coins
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CharacterItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItem retrieves an item by ID, or nil when not found
func (r *ShopRepository) GetItem(id string) (*models.CharacterItem, error) {
	query := `
		SELECT id, name, type, asset_key, cost_coins, is_default
		FROM character_items
		WHERE id = ?
	`
	var item models.CharacterItem
	var itemType string
	err := r.db.QueryRow(query, id).Scan(
		&item.ID, &item.Name, &itemType, &item.AssetKey, &item.CostCoins, &item.IsDefault)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	item.Type = models.ItemType(itemType)
	return &item, nil
}

// ListInventory returns a player's owned items
func (r *ShopRepository) ListInventory(userID string) ([]models.PlayerInventory, error) {
	query := `
		SELECT id, user_id, item_id, equipped
		FROM player_inventory
		WHERE user_id = ?
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inventory []models.PlayerInventory
	for rows.Next() {
		var inv models.PlayerInventory
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.ItemID, &inv.Equipped); err != nil {
			return nil, err
		}
		inventory = append(inventory, inv)
	}
	return inventory, rows.Err()
}

// AddToInventory grants an item to a player
func (r *ShopRepository) AddToInventory(inv *models.PlayerInventory) error {
	query := `
		INSERT INTO player_inventory (id, user_id, item_id, equipped)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, inv.ID, inv.UserID, inv.ItemID, inv.Equipped)
	return err
}

// Owns reports whether a player already owns an item
func (r *ShopRepository) Owns(userID, itemID string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM player_inventory WHERE user_id = ? AND item_id = ?",
		userID, itemID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Equip marks an owned item as equipped, unequipping any other item of
// the same type first.
func (r *ShopRepository) Equip(userID, itemID string, itemType models.ItemType) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	unequip := `
		UPDATE player_inventory
		SET equipped = ?
		WHERE user_id = ? AND item_id IN (
			SELECT id FROM character_items WHERE type = ?
		)
	`
	if _, err := tx.Exec(unequip, false, userID, string(itemType)); err != nil {
		return err
	}

	equip := "UPDATE player_inventory SET equipped = ? WHERE user_id = ? AND item_id = ?"
	if _, err := tx.Exec(equip, true, userID, itemID); err != nil {
		return err
	}

	return tx.Commit()
}

// EquippedItems returns the items a player currently has equipped
func (r *ShopRepository) EquippedItems(userID string) ([]models.CharacterItem, error) {
	query := `
		SELECT ci.id, ci.name, ci.type, ci.asset_key, ci.cost_coins, ci.is_default
		FROM player_inventory pi
		JOIN character_items ci ON ci.id = pi.item_id
		WHERE pi.user_id = ? AND pi.equipped = ?
	`
	rows, err := r.db.Query(query, userID, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CharacterItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(rows *sql.Rows) (models.CharacterItem, error) {
	var item models.CharacterItem
	var itemType string
	err := rows.Scan(&item.ID, &item.Name, &itemType, &item.AssetKey, &item.CostCoins, &item.IsDefault)
	item.Type = models.ItemType(itemType)
	return item, err
}
