package main

import (
	"fmt"
	"os"

	"github.com/titanous/json5"
)

// VotingGroup is one ballot to cast.
type VotingGroup struct {
	Name string `json:"name"`
	Vote string `json:"vote"`
}

func (g VotingGroup) String() string {
	return fmt.Sprintf("%s(vote=%s)", g.Name, g.Vote)
}

// ValidateVote accepts only "0" (die) and "1" (survive).
func ValidateVote(vote string) error {
	if vote != "0" && vote != "1" {
		return fmt.Errorf("vote must be \"0\" or \"1\", got %q", vote)
	}
	return nil
}

// DefaultGroups returns the five groups. The first four votes are fixed; the
// last one is the operator's final decision.
func DefaultGroups(finalDecision string) []VotingGroup {
	return []VotingGroup{
		{Name: "bearfoot_bearitone", Vote: "0"},
		{Name: "bearium_bearon", Vote: "0"},
		{Name: "stupandas_bamboozle", Vote: "1"},
		{Name: "bearing_embearass_goosebeary", Vote: "1"},
		{Name: "beary_pawsitively_forbearance", Vote: finalDecision},
	}
}

// LoadGroups reads groups from a JSON5 file, or returns DefaultGroups when
// filename is empty. Entries without a vote take finalDecision.
func LoadGroups(filename, finalDecision string) ([]VotingGroup, error) {
	if err := ValidateVote(finalDecision); err != nil {
		return nil, fmt.Errorf("final decision: %w", err)
	}

	if filename == "" {
		return DefaultGroups(finalDecision), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open groups file: %w", err)
	}

	return parseGroups(data, finalDecision)
}

func parseGroups(data []byte, finalDecision string) ([]VotingGroup, error) {
	var groups []VotingGroup
	if err := json5.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("failed to parse groups file: %w", err)
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("no groups found")
	}

	seen := make(map[string]bool, len(groups))
	for i := range groups {
		if groups[i].Name == "" {
			return nil, fmt.Errorf("group %d: missing name", i)
		}
		if seen[groups[i].Name] {
			return nil, fmt.Errorf("group %d: duplicate name %q", i, groups[i].Name)
		}
		seen[groups[i].Name] = true

		if groups[i].Vote == "" {
			groups[i].Vote = finalDecision
		}
		if err := ValidateVote(groups[i].Vote); err != nil {
			return nil, fmt.Errorf("group %s: %w", groups[i].Name, err)
		}
	}

	return groups, nil
}
