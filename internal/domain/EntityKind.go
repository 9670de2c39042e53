package domain

// EntityKind identifica um dos quatro tipos de entidade sincronizados
type EntityKind string

const (
	EntityKindCampaign EntityKind = "campaign"
	EntityKindAdGroup  EntityKind = "ad_group"
	EntityKindKeyword  EntityKind = "keyword"
	EntityKindAd       EntityKind = "ad"
)

// Nomes fixos das tabelas de destino
const (
	CampaignsTable = "Campaigns"
	AdGroupsTable  = "Ad Groups"
	KeywordsTable  = "Keywords"
	AdsTable       = "Ads"
	SetDateTable   = "Set Date"
)

// EntityKinds lista os tipos na ordem em que as tabelas são limpas
var EntityKinds = []EntityKind{
	EntityKindCampaign,
	EntityKindAdGroup,
	EntityKindKeyword,
	EntityKindAd,
}

// Table retorna o nome da tabela de destino do tipo
func (k EntityKind) Table() string {
	switch k {
	case EntityKindCampaign:
		return CampaignsTable
	case EntityKindAdGroup:
		return AdGroupsTable
	case EntityKindKeyword:
		return KeywordsTable
	case EntityKindAd:
		return AdsTable
	default:
		return ""
	}
}
