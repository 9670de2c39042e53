// Package aggregating reduz as linhas diárias do Google Ads a um registro por entidade
package aggregating

import "github.com/vfg2006/ads-metrics-sync/internal/domain"

// Folder descreve como extrair de uma linha bruta o identificador, os contadores
// e a entidade inicial de um tipo específico.
type Folder[R any, E domain.Measurable] struct {
	Key      func(row R) string
	Counters func(row R) domain.Counters
	Seed     func(row R) E
}

// Aggregate executa as duas passagens sobre as linhas na ordem de chegada.
//
// Na primeira, linhas sem custo e sem cliques são descartadas e as demais somam seus
// contadores na entidade do seu identificador; os atributos dimensionais vêm da
// primeira linha vista e nunca são sobrescritos. Na segunda, as razões são derivadas
// dos totais. O resultado preserva a ordem da primeira aparição de cada identificador.
func Aggregate[R any, E domain.Measurable](rows []R, f Folder[R, E]) []E {
	index := make(map[string]int)
	entities := make([]E, 0)

	for _, row := range rows {
		counters := f.Counters(row)
		if counters.IsEmpty() {
			continue
		}

		key := f.Key(row)
		pos, ok := index[key]
		if !ok {
			pos = len(entities)
			index[key] = pos
			entities = append(entities, f.Seed(row))
		}

		entities[pos].MetricsRef().Accumulate(counters)
	}

	for _, entity := range entities {
		entity.MetricsRef().Derive()
	}

	return entities
}

// ByID indexa o resultado da agregação pelo identificador
func ByID[E any](entities []E, id func(E) string) map[string]E {
	out := make(map[string]E, len(entities))
	for _, e := range entities {
		out[id(e)] = e
	}
	return out
}
