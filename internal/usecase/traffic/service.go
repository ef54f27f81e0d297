package traffic

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/pkg/latency"
)

// Routes - маршруты в порядке выдачи
var Routes = []string{
	"Third Mainland Bridge",
	"Lagos-Ibadan Expressway",
	"Ikorodu Road",
	"Apapa-Oshodi Expressway",
	"Lekki-Epe Expressway",
	"Agege Motor Road",
	"Badagry Expressway",
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// Service генерирует сводки о загруженности дорог
type Service struct {
	latency *latency.Simulator
	random  domain.RandomSource
}

// NewService создает новый экземпляр TrafficService
func NewService(sim *latency.Simulator) *Service {
	return &Service{
		latency: sim,
		random:  globalRandom{},
	}
}

// FetchTrafficReports возвращает свежую сводку по всем маршрутам
// Статус и время обновления выбираются случайно при каждом вызове
func (s *Service) FetchTrafficReports(ctx context.Context) ([]domain.TrafficReport, error) {
	reports := make([]domain.TrafficReport, len(Routes))
	for i, route := range Routes {
		reports[i] = domain.TrafficReport{
			ID:          fmt.Sprintf("traffic_%d", i),
			Route:       route,
			Status:      domain.TrafficStatuses[s.random.IntN(len(domain.TrafficStatuses))],
			LastUpdated: fmt.Sprintf("%dm ago", s.random.IntN(10)+1),
		}
	}
	return latency.Resolve(ctx, s.latency, reports, latency.Traffic)
}
