package domain

import "time"

// Ad representa um anúncio responsivo de pesquisa. O conteúdo criativo é opaco para o pipeline.
type Ad struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Headlines    string    `json:"headlines"`
	Descriptions string    `json:"descriptions"`
	Path1        string    `json:"path1"`
	Path2        string    `json:"path2"`
	FinalURLs    string    `json:"final_urls"`
	AdGroupID    string    `json:"ad_group_id"`
	AdGroupName  string    `json:"ad_group_name"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	LastUpdated  time.Time `json:"last_updated"`
	Metrics
}

func (a *Ad) MetricsRef() *Metrics {
	return &a.Metrics
}
