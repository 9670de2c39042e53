package domain

import "time"

// Keyword representa um critério de palavra-chave de um grupo de anúncios.
// CampaignID e os nomes dos pais só são preenchidos na etapa de vinculação.
type Keyword struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	MatchType    string    `json:"match_type"`
	Status       string    `json:"status"`
	AdGroupID    string    `json:"ad_group_id"`
	AdGroupName  string    `json:"ad_group_name"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	QualityScore *int      `json:"quality_score"` // nil quando a API não informa
	LastUpdated  time.Time `json:"last_updated"`
	Metrics
}

func (k *Keyword) MetricsRef() *Metrics {
	return &k.Metrics
}
