package domain

// TrafficStatus - загруженность дороги
type TrafficStatus string

const (
	TrafficHeavy    TrafficStatus = "Heavy"
	TrafficModerate TrafficStatus = "Moderate"
	TrafficLight    TrafficStatus = "Light"
)

// TrafficStatuses - все возможные статусы в порядке выбора генератором
var TrafficStatuses = []TrafficStatus{TrafficHeavy, TrafficModerate, TrafficLight}

// TrafficReport - сводка по маршруту
// Генерируется заново при каждом запросе, история не хранится
type TrafficReport struct {
	ID          string        `json:"id"`
	Route       string        `json:"route"`
	Status      TrafficStatus `json:"status"`
	LastUpdated string        `json:"lastUpdated"`
}
