package mercenaries

import (
	"hearth-mirror/core/container"
	"hearth-mirror/core/graph"
	"hearth-mirror/feature/mercenaries/models"
)

const (
	fieldTeams        = "m_teams"
	fieldTeamRecID    = "ID"
	fieldTeamRecName  = "m_name"
	fieldTeamRecMercs = "m_lettuceMercs"

	cacheVillageVisitors   = "NetCacheMercenariesVillageVisitorInfo"
	fieldVisitorStates     = "<VisitorStates>k__BackingField"
	fieldVisitorID         = "_VisitorId"
	fieldTaskChainProgress = "_TaskChainProgress"
	fieldActiveTaskState   = "_ActiveTaskState"
	fieldTaskID            = "_TaskId"
	fieldTaskProgress      = "_Progress"
	fieldTaskStatus        = "_Status_"
)

// ReadCollectionInfo returns every collectible mercenary together with the
// player's teams and the village visitors.
func (s *Service) ReadCollectionInfo() (*models.MercenariesCollection, error) {
	scope, err := s.scope()
	if err != nil {
		return nil, err
	}

	collection := &models.MercenariesCollection{
		Mercenaries: buildRoster(scope, collectibleMercenaries(scope), nil),
		Teams:       readTeams(scope),
		Visitors:    readVisitors(scope),
	}

	if err := finish(scope, "read collection info"); err != nil {
		return nil, err
	}
	return collection, nil
}

func readTeams(scope *graph.Scope) []models.MercenariesTeam {
	teams := make([]models.MercenariesTeam, 0)
	records := scope.Class(classCollectionManager).Field(fieldInstance).Field(fieldTeams)
	for team := range container.SlotMap(records).Values() {
		teams = append(teams, models.MercenariesTeam{
			ID:          team.Field(fieldTeamRecID).IntOr(0),
			Name:        team.Field(fieldTeamRecName).StringOr(""),
			Mercenaries: buildRoster(scope, team.Field(fieldTeamRecMercs), nil),
		})
	}
	return teams
}

func readVisitors(scope *graph.Scope) []models.MercenariesVisitor {
	visitors := make([]models.MercenariesVisitor, 0)
	states := scope.CacheService(cacheVillageVisitors).Field(fieldVisitorStates)
	for state := range container.Open(states).Values() {
		task := state.Field(fieldActiveTaskState)
		visitors = append(visitors, models.MercenariesVisitor{
			VisitorID:         state.Field(fieldVisitorID).IntOr(0),
			TaskID:            task.Field(fieldTaskID).IntOr(models.NoActiveTask),
			TaskChainProgress: state.Field(fieldTaskChainProgress).IntOr(0),
			TaskProgress:      task.Field(fieldTaskProgress).IntOr(0),
			Status:            task.Field(fieldTaskStatus).IntOr(0),
		})
	}
	return visitors
}
