package insighting

import (
	"sort"

	"github.com/prajwalcordiero/online-hackathon-1/internal/domain"
	"github.com/prajwalcordiero/online-hackathon-1/pkg/utils"
)

// Limiares e multiplicadores fixos da regra de precificação
const (
	highDemandThreshold = 70.0
	lowDemandThreshold  = 40.0

	increaseMultiplier = 1.05
	decreaseMultiplier = 0.90
)

// Estrutura para acompanhar cada grupo de previsão e fazer a média correta
type demandAggregator struct {
	totalUnits float64
	sampleSize int
}

type forecastKey struct {
	productID string
	storeID   string
	region    string
}

type priceKey struct {
	productID string
	storeID   string
}

// priceSnapshot guarda os preços do último registro observado de produto e loja
type priceSnapshot struct {
	basePrice       float64
	competitorPrice float64
}

// Service implementa a interface Insighter
type Service struct{}

// NewService cria uma nova instância do serviço de insights
func NewService() Insighter {
	return &Service{}
}

// BuildRetailInsights deriva os insights de varejo a partir dos registros de vendas.
// A função é pura: não guarda estado, não modifica a entrada e produz exatamente
// uma linha por combinação distinta de produto, loja e região presente nos
// registros. Entrada nula produz saída nula.
func (s *Service) BuildRetailInsights(records []domain.SalesRecord) []*domain.RetailInsight {
	if records == nil {
		return nil
	}

	// 1. Previsão de demanda: média das vendas diárias por produto, loja e região
	aggregators := make(map[forecastKey]*demandAggregator)
	keys := make([]forecastKey, 0)
	for _, record := range records {
		key := forecastKey{record.ProductID, record.StoreID, record.Region}

		aggregator, ok := aggregators[key]
		if !ok {
			aggregator = &demandAggregator{}
			aggregators[key] = aggregator
			keys = append(keys, key)
		}

		aggregator.totalUnits += record.DailySalesUnits
		aggregator.sampleSize++
	}

	// 2. Snapshot de preços por produto e loja. O último registro na ordem das
	// linhas prevalece; a ordem de chegada não é ordenação por data
	snapshots := make(map[priceKey]priceSnapshot)
	for _, record := range records {
		snapshots[priceKey{record.ProductID, record.StoreID}] = priceSnapshot{
			basePrice:       record.BasePrice,
			competitorPrice: record.CompetitorPrice,
		}
	}

	// Saída determinística para a renderização das páginas
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].productID != keys[j].productID {
			return keys[i].productID < keys[j].productID
		}
		if keys[i].storeID != keys[j].storeID {
			return keys[i].storeID < keys[j].storeID
		}
		return keys[i].region < keys[j].region
	})

	// 3. Junção das previsões com os snapshots e aplicação da regra de preço
	insights := make([]*domain.RetailInsight, 0, len(keys))
	for _, key := range keys {
		aggregator := aggregators[key]
		forecast := aggregator.totalUnits / float64(aggregator.sampleSize)

		insight := &domain.RetailInsight{
			ProductID:              key.productID,
			StoreID:                key.storeID,
			Region:                 key.region,
			InventoryForecastUnits: forecast,
		}

		if snapshot, ok := snapshots[priceKey{key.productID, key.storeID}]; ok {
			basePrice := snapshot.basePrice
			competitorPrice := snapshot.competitorPrice
			insight.BasePrice = &basePrice
			insight.CompetitorPrice = &competitorPrice
		}

		insight.SuggestedPrice, insight.PricingAction = suggestPrice(insight.BasePrice, forecast)

		insights = append(insights, insight)
	}

	return insights
}

// suggestPrice aplica a regra de precificação a uma previsão de demanda.
// Previsão acima de 70 unidades sugere aumento de 5%; abaixo de 40, redução
// de 10%; na faixa estável o preço base é mantido sem alteração. Sem preço
// base a ação ainda é calculada, mas nenhum preço é sugerido.
func suggestPrice(basePrice *float64, forecastUnits float64) (*float64, string) {
	switch {
	case forecastUnits > highDemandThreshold:
		return adjustedPrice(basePrice, increaseMultiplier), domain.PricingActionIncrease
	case forecastUnits < lowDemandThreshold:
		return adjustedPrice(basePrice, decreaseMultiplier), domain.PricingActionDecrease
	default:
		return copiedPrice(basePrice), domain.PricingActionHold
	}
}

func adjustedPrice(basePrice *float64, multiplier float64) *float64 {
	if basePrice == nil {
		return nil
	}

	suggested := utils.RoundWithTwoDecimalPlace(*basePrice * multiplier)
	return &suggested
}

func copiedPrice(basePrice *float64) *float64 {
	if basePrice == nil {
		return nil
	}

	suggested := *basePrice
	return &suggested
}
