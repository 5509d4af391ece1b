// Package entity defines the mutable game state: ownership records and player ledgers.
package entity

import "sort"

// OwnershipMap maps player → group → asset → house count.
// For street properties the group is the area; for commercial assets it is
// the asset type and the house count is always 0.
type OwnershipMap map[string]map[string]map[string]int

// OwnershipRecord is one flattened entry of an OwnershipMap.
type OwnershipRecord struct {
	Player string
	Group  string
	Asset  string
	Houses int
}

// OwnerOf scans every player for (group, asset).
// At most one player can match while the single-owner invariant holds.
func (m OwnershipMap) OwnerOf(group, asset string) (string, bool) {
	for player, groups := range m {
		if _, ok := groups[group][asset]; ok {
			return player, true
		}
	}
	return "", false
}

// Houses returns the player's house count on (group, asset) and whether the record exists.
func (m OwnershipMap) Houses(player, group, asset string) (int, bool) {
	h, ok := m[player][group][asset]
	return h, ok
}

// Set creates or overwrites the record for (player, group, asset).
func (m OwnershipMap) Set(player, group, asset string, houses int) {
	groups, ok := m[player]
	if !ok {
		groups = make(map[string]map[string]int)
		m[player] = groups
	}
	assets, ok := groups[group]
	if !ok {
		assets = make(map[string]int)
		groups[group] = assets
	}
	assets[asset] = houses
}

// CountInGroup returns how many assets of group the player holds.
func (m OwnershipMap) CountInGroup(player, group string) int {
	return len(m[player][group])
}

// Records flattens the map, ordered by player, group and asset.
func (m OwnershipMap) Records() []OwnershipRecord {
	var out []OwnershipRecord
	for player, groups := range m {
		for group, assets := range groups {
			for asset, houses := range assets {
				out = append(out, OwnershipRecord{Player: player, Group: group, Asset: asset, Houses: houses})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Asset < out[j].Asset
	})
	return out
}

// Player returns a copy of one player's records.
func (m OwnershipMap) Player(player string) map[string]map[string]int {
	out := make(map[string]map[string]int, len(m[player]))
	for group, assets := range m[player] {
		inner := make(map[string]int, len(assets))
		for asset, houses := range assets {
			inner[asset] = houses
		}
		out[group] = inner
	}
	return out
}

// Clone returns a deep copy.
func (m OwnershipMap) Clone() OwnershipMap {
	out := make(OwnershipMap, len(m))
	for player := range m {
		out[player] = m.Player(player)
	}
	return out
}
