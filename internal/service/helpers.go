package service

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
)

func translateTeamErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTeamNotFound
	}
	return err
}

func sortTeamsByName(teams []models.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		return nameCollator.CompareString(teams[i].TeamName, teams[j].TeamName) < 0
	})
}
