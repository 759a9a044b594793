package usecase

import (
	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/services/campus"
)

// CampusUC implements the campus usecase over an injected repository
// and gateway.
type CampusUC struct {
	cfg        *models.Config
	campusRepo campus.CampusRepo
	campusGW   campus.CampusGW
}

// NewCampusUC creates a new campus usecase instance
func NewCampusUC(cfg *models.Config, campusRepo campus.CampusRepo, campusGW campus.CampusGW) *CampusUC {
	return &CampusUC{
		cfg:        cfg,
		campusRepo: campusRepo,
		campusGW:   campusGW,
	}
}
