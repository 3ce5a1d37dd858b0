package models

// ItemType classifies a cosmetic character item
type ItemType string

const (
	ItemBase   ItemType = "base"
	ItemHat    ItemType = "hat"
	ItemOutfit ItemType = "outfit"
	ItemPet    ItemType = "pet"
	ItemEffect ItemType = "effect"
)

// CharacterItem is a cosmetic item purchasable with coins
type CharacterItem struct {
	ID        string
	Name      string
	Type      ItemType
	AssetKey  string
	CostCoins int
	IsDefault bool
}

// PlayerInventory links a player to an owned item
type PlayerInventory struct {
	ID       string
	UserID   string
	ItemID   string
	Equipped bool
}
