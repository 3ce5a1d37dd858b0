package database

import (
	"fmt"
	"log"
	"time"

	"wordquest/internal/models"
)

// Seed loads the starter worlds, levels, vocabulary and default
// character items. It is a no-op when worlds already exist, so it is
// safe to run on every boot.
func Seed(db *DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM worlds").Scan(&count); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, w := range seedWorlds {
		_, err := tx.Exec(`INSERT INTO worlds
			(id, name, description, theme, display_order, icon_emoji, color_primary, color_secondary, unlock_stars_required)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			w.ID, w.Name, w.Description, w.Theme, w.DisplayOrder,
			w.IconEmoji, w.ColorPrimary, w.ColorSecondary, w.UnlockStarsRequired)
		if err != nil {
			return fmt.Errorf("failed to seed world %s: %w", w.Name, err)
		}
	}

	for _, l := range seedLevels {
		_, err := tx.Exec(`INSERT INTO levels
			(id, world_id, level_number, name, difficulty_tier, target_word_count, time_limit_seconds, base_coins)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.WorldID, l.LevelNumber, l.Name, l.DifficultyTier,
			l.TargetWordCount, l.TimeLimitSeconds, l.BaseCoins)
		if err != nil {
			return fmt.Errorf("failed to seed level %s: %w", l.Name, err)
		}
	}

	for _, v := range seedVocabulary {
		_, err := tx.Exec(`INSERT INTO vocabulary
			(id, word, definition, part_of_speech, difficulty_tier, example_sentence, category, world_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			v.ID, v.Word, v.Definition, string(v.PartOfSpeech), v.DifficultyTier,
			v.ExampleSentence, v.Category, v.WorldID)
		if err != nil {
			return fmt.Errorf("failed to seed word %s: %w", v.Word, err)
		}
	}

	for i, r := range seedRelationships {
		_, err := tx.Exec(`INSERT INTO word_relationships
			(id, word_id, related_word_id, relationship_type)
			VALUES (?, ?, ?, ?)`,
			fmt.Sprintf("rel-%02d", i+1), r.WordID, r.RelatedWordID, string(r.RelationshipType))
		if err != nil {
			return fmt.Errorf("failed to seed relationship %s -> %s: %w", r.WordID, r.RelatedWordID, err)
		}
	}

	for _, item := range seedItems {
		_, err := tx.Exec(`INSERT INTO character_items
			(id, name, type, asset_key, cost_coins, is_default)
			VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, item.Name, string(item.Type), item.AssetKey, item.CostCoins, item.IsDefault)
		if err != nil {
			return fmt.Errorf("failed to seed item %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	log.Printf("Seeded %d worlds, %d levels, %d words at %s",
		len(seedWorlds), len(seedLevels), len(seedVocabulary),
		time.Now().Format(time.RFC3339))
	return nil
}

var seedWorlds = []models.World{
	{
		ID: "world-meadow", Name: "Sunny Meadow",
		Description: "Gentle words among the grass and flowers",
		Theme:       "meadow", DisplayOrder: 1, IconEmoji: "🌻",
		ColorPrimary: "#7CB342", ColorSecondary: "#FDD835",
	},
	{
		ID: "world-caverns", Name: "Crystal Caverns",
		Description: "Trickier words deep beneath the mountain",
		Theme:       "caverns", DisplayOrder: 2, IconEmoji: "💎",
		ColorPrimary: "#5E35B1", ColorSecondary: "#4DD0E1",
		UnlockStarsRequired: 6,
	},
}

var seedLevels = []models.Level{
	{ID: "lvl-meadow-1", WorldID: "world-meadow", LevelNumber: 1, Name: "First Steps",
		DifficultyTier: 1, TargetWordCount: 6, TimeLimitSeconds: 60, BaseCoins: 50},
	{ID: "lvl-meadow-2", WorldID: "world-meadow", LevelNumber: 2, Name: "Flower Path",
		DifficultyTier: 1, TargetWordCount: 8, TimeLimitSeconds: 90, BaseCoins: 60},
	{ID: "lvl-meadow-3", WorldID: "world-meadow", LevelNumber: 3, Name: "Tall Grass",
		DifficultyTier: 2, TargetWordCount: 8, TimeLimitSeconds: 90, BaseCoins: 75},
	{ID: "lvl-caverns-1", WorldID: "world-caverns", LevelNumber: 1, Name: "Cave Mouth",
		DifficultyTier: 3, TargetWordCount: 8, TimeLimitSeconds: 120, BaseCoins: 90},
	{ID: "lvl-caverns-2", WorldID: "world-caverns", LevelNumber: 2, Name: "Glowing Pools",
		DifficultyTier: 3, TargetWordCount: 10, TimeLimitSeconds: 120, BaseCoins: 100},
	{ID: "lvl-caverns-3", WorldID: "world-caverns", LevelNumber: 3, Name: "Deep Descent",
		DifficultyTier: 4, TargetWordCount: 10, TimeLimitSeconds: 150, BaseCoins: 120},
}

var seedVocabulary = []models.Vocabulary{
	{ID: "voc-happy", Word: "happy", Definition: "feeling or showing joy", PartOfSpeech: models.Adjective,
		DifficultyTier: 1, ExampleSentence: "The happy puppy wagged its tail.", Category: "feelings", WorldID: "world-meadow"},
	{ID: "voc-glad", Word: "glad", Definition: "pleased and cheerful", PartOfSpeech: models.Adjective,
		DifficultyTier: 1, ExampleSentence: "I am glad you came to visit.", Category: "feelings", WorldID: "world-meadow"},
	{ID: "voc-sad", Word: "sad", Definition: "feeling sorrow or unhappiness", PartOfSpeech: models.Adjective,
		DifficultyTier: 1, ExampleSentence: "She felt sad when the holiday ended.", Category: "feelings", WorldID: "world-meadow"},
	{ID: "voc-big", Word: "big", Definition: "of great size", PartOfSpeech: models.Adjective,
		DifficultyTier: 1, ExampleSentence: "A big tree shaded the whole yard.", Category: "size", WorldID: "world-meadow"},
	{ID: "voc-huge", Word: "huge", Definition: "extremely large", PartOfSpeech: models.Adjective,
		DifficultyTier: 1, ExampleSentence: "The whale was huge next to our boat.", Category: "size", WorldID: "world-meadow"},
	{ID: "voc-tiny", Word: "tiny", Definition: "very small", PartOfSpeech: models.Adjective,
		DifficultyTier: 1, ExampleSentence: "A tiny ladybug landed on my hand.", Category: "size", WorldID: "world-meadow"},
	{ID: "voc-run", Word: "run", Definition: "to move quickly on foot", PartOfSpeech: models.Verb,
		DifficultyTier: 1, ExampleSentence: "We run across the field every morning.", Category: "movement", WorldID: "world-meadow"},
	{ID: "voc-jump", Word: "jump", Definition: "to push off the ground into the air", PartOfSpeech: models.Verb,
		DifficultyTier: 2, ExampleSentence: "The frog can jump over the puddle.", Category: "movement", WorldID: "world-meadow"},
	{ID: "voc-meadow", Word: "meadow", Definition: "a field of grass and wildflowers", PartOfSpeech: models.Noun,
		DifficultyTier: 1, ExampleSentence: "Bees buzzed across the meadow.", Category: "nature", WorldID: "world-meadow"},
	{ID: "voc-blossom", Word: "blossom", Definition: "a flower on a tree or plant", PartOfSpeech: models.Noun,
		DifficultyTier: 2, ExampleSentence: "Each blossom opened in the spring sun.", Category: "nature", WorldID: "world-meadow"},
	{ID: "voc-gentle", Word: "gentle", Definition: "soft, mild and kind", PartOfSpeech: models.Adjective,
		DifficultyTier: 2, ExampleSentence: "A gentle breeze moved the curtains.", Category: "feelings", WorldID: "world-meadow"},
	{ID: "voc-rough", Word: "rough", Definition: "not smooth or gentle", PartOfSpeech: models.Adjective,
		DifficultyTier: 2, ExampleSentence: "The bark felt rough under my fingers.", Category: "texture", WorldID: "world-meadow"},

	{ID: "voc-luminous", Word: "luminous", Definition: "giving off light; glowing", PartOfSpeech: models.Adjective,
		DifficultyTier: 3, ExampleSentence: "Luminous crystals lit the tunnel walls.", Category: "light", WorldID: "world-caverns"},
	{ID: "voc-radiant", Word: "radiant", Definition: "shining brightly", PartOfSpeech: models.Adjective,
		DifficultyTier: 3, ExampleSentence: "The gem was radiant in the torchlight.", Category: "light", WorldID: "world-caverns"},
	{ID: "voc-dim", Word: "dim", Definition: "giving little light; not bright", PartOfSpeech: models.Adjective,
		DifficultyTier: 3, ExampleSentence: "The lantern grew dim as we walked deeper.", Category: "light", WorldID: "world-caverns"},
	{ID: "voc-cavern", Word: "cavern", Definition: "a large underground cave", PartOfSpeech: models.Noun,
		DifficultyTier: 3, ExampleSentence: "Our voices filled the whole cavern.", Category: "places", WorldID: "world-caverns"},
	{ID: "voc-mineral", Word: "mineral", Definition: "a natural solid substance found in rock", PartOfSpeech: models.Noun,
		DifficultyTier: 3, ExampleSentence: "Quartz is a common mineral in these hills.", Category: "science", WorldID: "world-caverns"},
	{ID: "voc-excavate", Word: "excavate", Definition: "to dig out and remove earth", PartOfSpeech: models.Verb,
		DifficultyTier: 4, ExampleSentence: "The team worked for weeks to excavate the chamber.", Category: "actions", WorldID: "world-caverns"},
	{ID: "voc-fragile", Word: "fragile", Definition: "easily broken or damaged", PartOfSpeech: models.Adjective,
		DifficultyTier: 3, ExampleSentence: "Handle the fragile crystal with care.", Category: "texture", WorldID: "world-caverns"},
	{ID: "voc-delicate", Word: "delicate", Definition: "fine in texture and easily damaged", PartOfSpeech: models.Adjective,
		DifficultyTier: 4, ExampleSentence: "The delicate formations took centuries to grow.", Category: "texture", WorldID: "world-caverns"},
	{ID: "voc-sturdy", Word: "sturdy", Definition: "strongly and solidly built", PartOfSpeech: models.Adjective,
		DifficultyTier: 3, ExampleSentence: "A sturdy rope held the climbers.", Category: "texture", WorldID: "world-caverns"},
	{ID: "voc-echo", Word: "echo", Definition: "a sound reflected back to its source", PartOfSpeech: models.Noun,
		DifficultyTier: 3, ExampleSentence: "An echo answered every shout.", Category: "science", WorldID: "world-caverns"},
	{ID: "voc-descend", Word: "descend", Definition: "to move downward", PartOfSpeech: models.Verb,
		DifficultyTier: 4, ExampleSentence: "We descend the stone stairs slowly.", Category: "movement", WorldID: "world-caverns"},
	{ID: "voc-ascend", Word: "ascend", Definition: "to move upward", PartOfSpeech: models.Verb,
		DifficultyTier: 4, ExampleSentence: "Bats ascend toward the cave mouth at dusk.", Category: "movement", WorldID: "world-caverns"},
}

var seedRelationships = []models.WordRelationship{
	{WordID: "voc-happy", RelatedWordID: "voc-glad", RelationshipType: models.Synonym},
	{WordID: "voc-glad", RelatedWordID: "voc-happy", RelationshipType: models.Synonym},
	{WordID: "voc-happy", RelatedWordID: "voc-sad", RelationshipType: models.Antonym},
	{WordID: "voc-sad", RelatedWordID: "voc-happy", RelationshipType: models.Antonym},
	{WordID: "voc-big", RelatedWordID: "voc-huge", RelationshipType: models.Synonym},
	{WordID: "voc-huge", RelatedWordID: "voc-big", RelationshipType: models.Synonym},
	{WordID: "voc-big", RelatedWordID: "voc-tiny", RelationshipType: models.Antonym},
	{WordID: "voc-tiny", RelatedWordID: "voc-big", RelationshipType: models.Antonym},
	{WordID: "voc-gentle", RelatedWordID: "voc-rough", RelationshipType: models.Antonym},
	{WordID: "voc-rough", RelatedWordID: "voc-gentle", RelationshipType: models.Antonym},
	{WordID: "voc-luminous", RelatedWordID: "voc-radiant", RelationshipType: models.Synonym},
	{WordID: "voc-radiant", RelatedWordID: "voc-luminous", RelationshipType: models.Synonym},
	{WordID: "voc-luminous", RelatedWordID: "voc-dim", RelationshipType: models.Antonym},
	{WordID: "voc-dim", RelatedWordID: "voc-luminous", RelationshipType: models.Antonym},
	{WordID: "voc-fragile", RelatedWordID: "voc-delicate", RelationshipType: models.Synonym},
	{WordID: "voc-delicate", RelatedWordID: "voc-fragile", RelationshipType: models.Synonym},
	{WordID: "voc-fragile", RelatedWordID: "voc-sturdy", RelationshipType: models.Antonym},
	{WordID: "voc-sturdy", RelatedWordID: "voc-fragile", RelationshipType: models.Antonym},
	{WordID: "voc-descend", RelatedWordID: "voc-ascend", RelationshipType: models.Antonym},
	{WordID: "voc-ascend", RelatedWordID: "voc-descend", RelationshipType: models.Antonym},
}

var seedItems = []models.CharacterItem{
	{ID: "item-scout", Name: "Scout", Type: models.ItemBase, AssetKey: "base/scout", CostCoins: 0, IsDefault: true},
	{ID: "item-explorer-cap", Name: "Explorer Cap", Type: models.ItemHat, AssetKey: "hat/explorer-cap", CostCoins: 100},
	{ID: "item-crystal-crown", Name: "Crystal Crown", Type: models.ItemHat, AssetKey: "hat/crystal-crown", CostCoins: 250},
	{ID: "item-meadow-tunic", Name: "Meadow Tunic", Type: models.ItemOutfit, AssetKey: "outfit/meadow-tunic", CostCoins: 150},
	{ID: "item-firefly", Name: "Firefly", Type: models.ItemPet, AssetKey: "pet/firefly", CostCoins: 300},
	{ID: "item-sparkle-trail", Name: "Sparkle Trail", Type: models.ItemEffect, AssetKey: "effect/sparkle-trail", CostCoins: 400},
}
