// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package producers

import (
	"regexp"
	"strings"
)

var (
	// ", and " (Oxford comma) collapses to a single comma first.
	oxfordAndPattern = regexp.MustCompile(`(?i),\s*and\s+`)
	// Any remaining " and " between names.
	andPattern = regexp.MustCompile(`(?i)\s+and\s+`)
)

// ParseNames splits a producers credit string into individual names.
//
//	ParseNames("A, B and C")  // ["A", "B", "C"]
//	ParseNames("A, B, and C") // ["A", "B", "C"]
//	ParseNames("")            // []
//
// Names keep their left-to-right order and duplicates are returned as-is.
// Blank input yields an empty, non-nil slice.
func ParseNames(credits string) []string {
	names := []string{}
	if strings.TrimSpace(credits) == "" {
		return names
	}

	normalized := oxfordAndPattern.ReplaceAllString(credits, ",")
	normalized = andPattern.ReplaceAllString(normalized, ",")

	for _, part := range strings.Split(normalized, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
