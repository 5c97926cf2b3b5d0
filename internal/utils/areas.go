package utils

import (
	"strings"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// FindArea searches the region tree depth-first for a case-insensitive
// exact name match and returns the id of the first hit
func FindArea(tree []models.Area, name string) (int, bool) {
	for _, area := range tree {
		if strings.EqualFold(area.Name, name) {
			return int(area.ID), true
		}
		if len(area.Areas) > 0 {
			if id, ok := FindArea(area.Areas, name); ok {
				return id, true
			}
		}
	}
	return 0, false
}
