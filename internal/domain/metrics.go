package domain

const microsPerUnit = 1_000_000

// Counters são os valores brutos de uma linha diária retornada pelo Google Ads
type Counters struct {
	Impressions      int64
	Clicks           int64
	CostMicros       int64
	Conversions      float64
	ConversionsValue float64
}

// IsEmpty indica uma linha sem custo e sem cliques, que não carrega sinal algum
func (c Counters) IsEmpty() bool {
	return c.CostMicros == 0 && c.Clicks == 0
}

// Metrics contém os contadores somados de uma entidade e as métricas derivadas deles
type Metrics struct {
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	CostMicros       int64   `json:"-"`
	Cost             float64 `json:"cost"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversions_value"`

	CTR              float64 `json:"ctr"`
	ConversionRate   float64 `json:"conversion_rate"`
	CPC              float64 `json:"cpc"`
	CPA              float64 `json:"cpa"`
	ROAS             float64 `json:"roas"`
	PerformanceScore float64 `json:"performance_score"`
}

// Accumulate soma os contadores de uma linha aos totais da entidade
func (m *Metrics) Accumulate(c Counters) {
	m.Impressions += c.Impressions
	m.Clicks += c.Clicks
	m.CostMicros += c.CostMicros
	m.Conversions += c.Conversions
	m.ConversionsValue += c.ConversionsValue
	m.Cost = float64(m.CostMicros) / microsPerUnit
}

// Derive calcula as razões a partir dos totais já somados.
// Nunca deve ser chamado antes de todas as linhas da entidade terem sido acumuladas.
func (m *Metrics) Derive() {
	m.Cost = float64(m.CostMicros) / microsPerUnit

	m.CTR = ratio(float64(m.Clicks), float64(m.Impressions))
	m.ConversionRate = ratio(m.Conversions, float64(m.Clicks))
	m.CPC = ratio(m.Cost, float64(m.Clicks))
	m.CPA = ratio(m.Cost, m.Conversions)
	m.ROAS = ratio(m.ConversionsValue, m.Cost)

	// Sinal composto para ranking, não é um percentual limitado a 0-100
	m.PerformanceScore = m.CTR * m.ConversionRate * m.ROAS * 100
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Measurable é implementado por toda entidade que carrega métricas agregadas
type Measurable interface {
	MetricsRef() *Metrics
}
