package models

// Mercenary is one mercenary of the collection or of a team.
type Mercenary struct {
	ID                 int                  `json:"id"`
	Level              int                  `json:"level"`
	Abilities          []MercenaryAbility   `json:"abilities"`
	Equipments         []MercenaryEquipment `json:"equipments"`
	TreasureCardDbfIDs []int                `json:"treasure_card_dbf_ids"`
	Attack             int                  `json:"attack"`
	Health             int                  `json:"health"`
	CurrencyAmount     int                  `json:"currency_amount"`
	Experience         int                  `json:"experience"`
	IsFullyUpgraded    bool                 `json:"is_fully_upgraded"`
	Owned              bool                 `json:"owned"`
	// Premium is the highest premium tier among the art variations.
	Premium int `json:"premium"`
	Rarity  int `json:"rarity"`
	Role    int `json:"role"`
}

// MercenaryAbility is an unlocked ability at its selected tier.
type MercenaryAbility struct {
	CardID string `json:"card_id"`
	Tier   int    `json:"tier"`
}

// MercenaryEquipment is one equipment slot of a mercenary.
type MercenaryEquipment struct {
	ID       int  `json:"id"`
	CardType int  `json:"card_type"`
	Tier     int  `json:"tier"`
	Equipped bool `json:"equipped"`
	Owned    bool `json:"owned"`
}

// MercenariesInfo groups the pvp rating and the active bounty map.
type MercenariesInfo struct {
	PvpRating int `json:"pvp_rating"`
	// Map is nil when no bounty is in progress.
	Map *MercenariesMap `json:"map"`
}

// MercenariesMap is the state of the bounty in progress.
type MercenariesMap struct {
	BountyID          int         `json:"bounty_id"`
	MapID             int         `json:"map_id"`
	Seed              int         `json:"seed"`
	PlayerTeamID      int         `json:"player_team_id"`
	PlayerTeamName    string      `json:"player_team_name"`
	PlayerTeamMercIDs []int       `json:"player_team_merc_ids"`
	PlayerTeam        []Mercenary `json:"player_team"`
	DeadMercIDs       []int       `json:"dead_merc_ids"`
	CurrentStep       int         `json:"current_step"`
	MaxStep           int         `json:"max_step"`
}

// MercenariesCollection is the full mercenary roster with teams and village visitors.
type MercenariesCollection struct {
	Mercenaries []Mercenary          `json:"mercenaries"`
	Teams       []MercenariesTeam    `json:"teams"`
	Visitors    []MercenariesVisitor `json:"visitors"`
}

// MercenariesTeam is a player-defined team.
type MercenariesTeam struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Mercenaries []Mercenary `json:"mercenaries"`
}

// MercenariesVisitor is a village visitor and its active task.
type MercenariesVisitor struct {
	VisitorID         int `json:"visitor_id"`
	TaskID            int `json:"task_id"`
	TaskChainProgress int `json:"task_chain_progress"`
	TaskProgress      int `json:"task_progress"`
	Status            int `json:"status"`
}

// MercenariesPendingTreasureSelection is a treasure choice awaiting the player.
type MercenariesPendingTreasureSelection struct {
	MercenaryID int   `json:"mercenary_id"`
	Options     []int `json:"options"`
}

// NodeState is the completion state of a bounty map node.
type NodeState int

const (
	NodeStateInvalid NodeState = iota
	NodeStateLocked
	NodeStateUnlocked
	NodeStateComplete
)

// NoActiveTask is the task id reported for a visitor without an active task.
const NoActiveTask = -1
