// Package mercenaries extracts the Mercenaries game mode: the player's pvp
// rating and bounty map, the mercenary collection with teams and village
// visitors, and the pending treasure choice.
//
// Rosters are rebuilt on every call from CollectionManager's collectible
// mercenaries. Abilities are included once the mercenary reaches their unlock
// level and resolve to the tier entry matching the selected tier; an ability
// whose selected tier has no entry is dropped and logged. Treasures assigned
// on the active map are attached to the matching roster members.
package mercenaries
