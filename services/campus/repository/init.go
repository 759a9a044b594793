package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/snsce/attendance/internal/pkg/database"
	"github.com/snsce/attendance/internal/pkg/models"
)

// CampusRepo persists identity records, profiles and attendance in
// PostgreSQL and OTP state in Redis.
type CampusRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewCampusRepo creates a new campus repository instance
func NewCampusRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *CampusRepo {
	return &CampusRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
