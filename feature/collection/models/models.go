package models

// CollectionCard aggregates every owned variant of one card.
type CollectionCard struct {
	CardID         string `json:"card_id"`
	Count          int    `json:"count"`
	PremiumCount   int    `json:"premium_count"`
	DiamondCount   int    `json:"diamond_count"`
	SignatureCount int    `json:"signature_count"`
	MaxCount       int    `json:"max_count"`
	// OtherCount is the part of Count contributed by variant tags this
	// version does not recognize.
	OtherCount int `json:"other_count,omitempty"`
}

// CollectionCardBack is one owned card back.
type CollectionCardBack struct {
	CardBackID int `json:"card_back_id"`
}

// BattlegroundsHeroSkin is one owned hero skin resolved to its card.
type BattlegroundsHeroSkin struct {
	SkinID    int    `json:"skin_id"`
	CardDbfID int    `json:"card_dbf_id"`
	CardID    string `json:"card_id,omitempty"`
}

// DustInfoCard is the crafting valuation of one (card, premium) pair.
type DustInfoCard struct {
	CardID            string `json:"card_id"`
	Premium           int    `json:"premium"`
	BuyValue          int    `json:"buy_value"`
	SellValue         int    `json:"sell_value"`
	BuyValueOverride  *int   `json:"buy_value_override,omitempty"`
	SellValueOverride *int   `json:"sell_value_override,omitempty"`
}

// Premium variant tags as stored on collectible card entries.
const (
	PremiumNormal    = 0
	PremiumGolden    = 1
	PremiumDiamond   = 2
	PremiumSignature = 3
	PremiumMax       = 4
)
