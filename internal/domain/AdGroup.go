package domain

import "time"

type AdGroup struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	LastUpdated  time.Time `json:"last_updated"`
	Metrics
}

func (ag *AdGroup) MetricsRef() *Metrics {
	return &ag.Metrics
}
