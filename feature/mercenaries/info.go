package mercenaries

import (
	"hearth-mirror/core/container"
	"hearth-mirror/core/graph"
	"hearth-mirror/feature/mercenaries/models"
)

const (
	cachePlayerInfo = "NetCacheMercenariesPlayerInfo"
	fieldPvpRating  = "<PvpRating>k__BackingField"
	cacheLettuceMap = "NetCacheLettuceMap"
	fieldMap        = "<Map>k__BackingField"

	fieldBountyID        = "_BountyId"
	fieldMapID           = "_MapId"
	fieldSeed            = "_Seed"
	fieldPlayerData      = "_PlayerData"
	fieldTeamList        = "_TeamList"
	fieldMercenaries     = "_Mercenaries"
	fieldTeamID          = "_TeamId"
	fieldTeamName        = "_TeamName"
	fieldDeadMercenaries = "_DeadMercenaries"
	fieldNodes           = "_Nodes"
	fieldNodeState       = "_NodeState_"
	fieldNodeRow         = "_Row"
)

// ReadPlayerInfo returns the pvp rating and, when a bounty is in progress,
// the state of its map.
func (s *Service) ReadPlayerInfo() (*models.MercenariesInfo, error) {
	scope, err := s.scope()
	if err != nil {
		return nil, err
	}

	info := &models.MercenariesInfo{
		PvpRating: scope.CacheService(cachePlayerInfo).Field(fieldPvpRating).IntOr(0),
	}
	if m := activeMap(scope); m.Present() {
		info.Map = readMap(scope, m)
	}

	if err := finish(scope, "read player info"); err != nil {
		return nil, err
	}
	return info, nil
}

func readMap(scope *graph.Scope, m graph.Ref) *models.MercenariesMap {
	player := container.First(container.Open(m.Field(fieldPlayerData)))
	teamIDs := intsOf(player.Field(fieldTeamList).Field(fieldMercenaries))

	deadIDs := make([]int, 0)
	for group := range container.Open(m.Field(fieldDeadMercenaries)).Values() {
		deadIDs = append(deadIDs, intsOf(group.Field(fieldMercenaries))...)
	}

	current, last := steps(m.Field(fieldNodes))
	return &models.MercenariesMap{
		BountyID:          m.Field(fieldBountyID).IntOr(0),
		MapID:             m.Field(fieldMapID).IntOr(0),
		Seed:              m.Field(fieldSeed).IntOr(0),
		PlayerTeamID:      player.Field(fieldTeamID).IntOr(0),
		PlayerTeamName:    player.Field(fieldTeamName).StringOr(""),
		PlayerTeamMercIDs: teamIDs,
		PlayerTeam:        buildRoster(scope, collectibleMercenaries(scope), newIDSet(teamIDs)),
		DeadMercIDs:       deadIDs,
		CurrentStep:       current,
		MaxStep:           last,
	}
}

// steps derives the map progress from its nodes. Completing row N puts the
// player on step N+1; the last step is the highest row of the map. Nodes
// without a row are ignored.
func steps(nodes graph.Ref) (current, last int) {
	for node := range container.Open(nodes).Values() {
		row, ok := node.Field(fieldNodeRow).AsInt()
		if !ok {
			continue
		}
		if models.NodeState(node.Field(fieldNodeState).IntOr(0)) == models.NodeStateComplete {
			current = max(current, row+1)
		}
		last = max(last, row)
	}
	return current, last
}
