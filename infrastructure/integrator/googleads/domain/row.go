package adsdomain

import "strings"

// SearchStreamChunk é um elemento do array retornado por googleAds:searchStream
type SearchStreamChunk struct {
	Results   []Row  `json:"results"`
	FieldMask string `json:"fieldMask"`
	RequestID string `json:"requestId"`
}

// Row é uma linha do resultado. Apenas o recurso consultado vem preenchido.
type Row struct {
	Campaign         *Campaign         `json:"campaign,omitempty"`
	AdGroup          *AdGroup          `json:"adGroup,omitempty"`
	AdGroupCriterion *AdGroupCriterion `json:"adGroupCriterion,omitempty"`
	AdGroupAd        *AdGroupAd        `json:"adGroupAd,omitempty"`
	Metrics          Metrics           `json:"metrics"`
	Segments         Segments          `json:"segments"`
}

type Campaign struct {
	ResourceName           string `json:"resourceName"`
	ID                     Int64  `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
	StartDate              string `json:"startDate"`
	EndDate                string `json:"endDate"`
}

type AdGroup struct {
	ResourceName string `json:"resourceName"`
	ID           Int64  `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Campaign     string `json:"campaign"`
}

type Keyword struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type QualityInfo struct {
	QualityScore int `json:"qualityScore"`
}

type AdGroupCriterion struct {
	ResourceName string       `json:"resourceName"`
	CriterionID  Int64        `json:"criterionId"`
	Status       string       `json:"status"`
	AdGroup      string       `json:"adGroup"`
	Keyword      *Keyword     `json:"keyword,omitempty"`
	QualityInfo  *QualityInfo `json:"qualityInfo,omitempty"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type ResponsiveSearchAd struct {
	Headlines    []AdTextAsset `json:"headlines"`
	Descriptions []AdTextAsset `json:"descriptions"`
	Path1        string        `json:"path1"`
	Path2        string        `json:"path2"`
}

type Ad struct {
	ID                 Int64               `json:"id"`
	Type               string              `json:"type"`
	FinalURLs          []string            `json:"finalUrls"`
	ResponsiveSearchAd *ResponsiveSearchAd `json:"responsiveSearchAd,omitempty"`
}

type AdGroupAd struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
	AdGroup      string `json:"adGroup"`
	Ad           Ad     `json:"ad"`
}

type Metrics struct {
	Impressions      Int64   `json:"impressions"`
	Clicks           Int64   `json:"clicks"`
	CostMicros       Int64   `json:"costMicros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type Segments struct {
	Date string `json:"date"`
}

// ResourceID extrai o identificador final de um resource name
// (customers/123/campaigns/456 -> 456).
func ResourceID(resourceName string) string {
	if resourceName == "" {
		return ""
	}
	parts := strings.Split(resourceName, "/")
	return parts[len(parts)-1]
}

// JoinTexts concatena os textos dos assets com o separador informado
func JoinTexts(assets []AdTextAsset, sep string) string {
	texts := make([]string, 0, len(assets))
	for _, a := range assets {
		texts = append(texts, a.Text)
	}
	return strings.Join(texts, sep)
}
