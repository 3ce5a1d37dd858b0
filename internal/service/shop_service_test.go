package service

import (
	"testing"

	"wordquest/internal/models"
)

func TestPurchaseDefaultItemIsFree(t *testing.T) {
	env := newTestEnv(t, 30)
	userID := env.registerPlayer(t, "rosa")

	if err := env.shopSvc.Purchase(userID, "item-scout"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	progress, err := env.progress.GetProgress(userID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.TotalCoins != 0 {
		t.Errorf("coins = %d, want 0 after a free purchase", progress.TotalCoins)
	}

	if err := env.shopSvc.Purchase(userID, "item-scout"); err != ErrItemAlreadyOwned {
		t.Errorf("repurchase err = %v, want ErrItemAlreadyOwned", err)
	}
}

func TestPurchaseRequiresCoins(t *testing.T) {
	env := newTestEnv(t, 31)
	userID := env.registerPlayer(t, "rosa")

	if err := env.shopSvc.Purchase(userID, "item-explorer-cap"); err != ErrInsufficientCoins {
		t.Fatalf("broke purchase err = %v, want ErrInsufficientCoins", err)
	}

	// Grant coins and retry
	progress, _ := env.progress.GetProgress(userID)
	progress.TotalCoins = 150
	if err := env.progress.UpdateProgress(progress); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	if err := env.shopSvc.Purchase(userID, "item-explorer-cap"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	progress, _ = env.progress.GetProgress(userID)
	if progress.TotalCoins != 50 {
		t.Errorf("coins = %d, want 50 after a 100-coin purchase", progress.TotalCoins)
	}

	if err := env.shopSvc.Purchase(userID, "no-such-item"); err != ErrItemNotFound {
		t.Errorf("unknown item err = %v, want ErrItemNotFound", err)
	}
}

func TestEquipSwapsWithinType(t *testing.T) {
	env := newTestEnv(t, 32)
	userID := env.registerPlayer(t, "rosa")

	progress, _ := env.progress.GetProgress(userID)
	progress.TotalCoins = 1000
	if err := env.progress.UpdateProgress(progress); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	for _, itemID := range []string{"item-explorer-cap", "item-crystal-crown"} {
		if err := env.shopSvc.Purchase(userID, itemID); err != nil {
			t.Fatalf("Purchase %s: %v", itemID, err)
		}
	}

	if err := env.shopSvc.Equip(userID, "item-explorer-cap"); err != nil {
		t.Fatalf("Equip: %v", err)
	}
	if err := env.shopSvc.Equip(userID, "item-crystal-crown"); err != nil {
		t.Fatalf("Equip: %v", err)
	}

	// Only one hat stays equipped
	equipped, err := env.shopSvc.Character(userID)
	if err != nil {
		t.Fatalf("Character: %v", err)
	}
	var hats []models.CharacterItem
	for _, item := range equipped {
		if item.Type == models.ItemHat {
			hats = append(hats, item)
		}
	}
	if len(hats) != 1 || hats[0].ID != "item-crystal-crown" {
		t.Errorf("equipped hats = %+v, want only the crystal crown", hats)
	}
}

func TestEquipRequiresOwnership(t *testing.T) {
	env := newTestEnv(t, 33)
	userID := env.registerPlayer(t, "rosa")

	if err := env.shopSvc.Equip(userID, "item-firefly"); err != ErrItemNotOwned {
		t.Errorf("err = %v, want ErrItemNotOwned", err)
	}
}

func TestCatalogueFlags(t *testing.T) {
	env := newTestEnv(t, 34)
	userID := env.registerPlayer(t, "rosa")

	if err := env.shopSvc.Purchase(userID, "item-scout"); err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if err := env.shopSvc.Equip(userID, "item-scout"); err != nil {
		t.Fatalf("Equip: %v", err)
	}

	catalogue, err := env.shopSvc.Catalogue(userID)
	if err != nil {
		t.Fatalf("Catalogue: %v", err)
	}
	if len(catalogue) == 0 {
		t.Fatal("empty catalogue")
	}
	for _, item := range catalogue {
		if item.ID == "item-scout" {
			if !item.Owned || !item.Equipped {
				t.Errorf("scout flags = %+v, want owned and equipped", item)
			}
		} else if item.Owned {
			t.Errorf("item %s reported owned, never purchased", item.ID)
		}
	}
}
