package gateway

import (
	"github.com/snsce/attendance/internal/pkg/models"
	"github.com/snsce/attendance/internal/pkg/nsq"
)

// CampusGW implements the outbound gateway: OTP delivery over SMTP and
// SMS, domain events over NSQ. A nil producer disables event
// publishing.
type CampusGW struct {
	cfg      *models.Config
	producer *nsq.Producer
}

// NewCampusGW creates a new campus gateway instance
func NewCampusGW(cfg *models.Config, producer *nsq.Producer) *CampusGW {
	return &CampusGW{
		cfg:      cfg,
		producer: producer,
	}
}
