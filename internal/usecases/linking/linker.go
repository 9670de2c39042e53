// Package linking preenche os nomes e ids dos pais de cada entidade
package linking

import (
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/aggregating"
)

// Linked é o conjunto das quatro coleções já vinculadas
type Linked struct {
	Campaigns []*domain.Campaign
	AdGroups  []*domain.AdGroup
	Keywords  []*domain.Keyword
	Ads       []*domain.Ad
}

// Total soma a quantidade de entidades das quatro coleções
func (l Linked) Total() int {
	return len(l.Campaigns) + len(l.AdGroups) + len(l.Keywords) + len(l.Ads)
}

// Link devolve cópias das entidades com os campos de vínculo preenchidos.
// As entradas não são alteradas. Pais ausentes do intervalo resultam em
// campos vazios, nunca em erro.
//
// Keywords e ads só conhecem o grupo de anúncios; o id da campanha vem do
// grupo correspondente e, a partir dele, o nome da campanha.
func Link(campaigns []*domain.Campaign, adGroups []*domain.AdGroup, keywords []*domain.Keyword, ads []*domain.Ad) Linked {
	campaignNames := make(map[string]string, len(campaigns))
	for _, c := range campaigns {
		campaignNames[c.ID] = c.Name
	}

	groupsByID := aggregating.ByID(adGroups, func(ag *domain.AdGroup) string { return ag.ID })

	out := Linked{
		Campaigns: make([]*domain.Campaign, 0, len(campaigns)),
		AdGroups:  make([]*domain.AdGroup, 0, len(adGroups)),
		Keywords:  make([]*domain.Keyword, 0, len(keywords)),
		Ads:       make([]*domain.Ad, 0, len(ads)),
	}

	for _, c := range campaigns {
		cp := *c
		out.Campaigns = append(out.Campaigns, &cp)
	}

	for _, ag := range adGroups {
		cp := *ag
		cp.CampaignName = campaignNames[cp.CampaignID]
		out.AdGroups = append(out.AdGroups, &cp)
	}

	for _, k := range keywords {
		cp := *k
		cp.AdGroupName, cp.CampaignID, cp.CampaignName = resolveParents(cp.AdGroupID, groupsByID, campaignNames)
		out.Keywords = append(out.Keywords, &cp)
	}

	for _, a := range ads {
		cp := *a
		cp.AdGroupName, cp.CampaignID, cp.CampaignName = resolveParents(cp.AdGroupID, groupsByID, campaignNames)
		out.Ads = append(out.Ads, &cp)
	}

	return out
}

func resolveParents(adGroupID string, groups map[string]*domain.AdGroup, campaignNames map[string]string) (adGroupName, campaignID, campaignName string) {
	group, ok := groups[adGroupID]
	if !ok {
		return "", "", ""
	}

	return group.Name, group.CampaignID, campaignNames[group.CampaignID]
}
