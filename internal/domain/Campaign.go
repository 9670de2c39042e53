package domain

import "time"

// Campaign é a raiz da hierarquia de entidades do Google Ads
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	ChannelType string    `json:"channel_type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	LastUpdated time.Time `json:"last_updated"`
	Metrics
}

func (c *Campaign) MetricsRef() *Metrics {
	return &c.Metrics
}
