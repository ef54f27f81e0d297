package domain

// UserData - полный набор данных водителя
// Единица хранения в хранилище данных пользователей (ключ - ID аккаунта)
// Связь с аккаунтом только по ID, ссылочная целостность не проверяется
type UserData struct {
	Profile       Profile        `json:"profile"`
	Documents     []Document     `json:"documents"`
	Inspections   []Inspection   `json:"inspections"`
	Notifications []Notification `json:"notifications"`
	Fines         []Fine         `json:"fines"`
}

// LatestInspection возвращает последнюю запись о техосмотре (первый элемент)
// ВАЖНО: только что забронированный техосмотр (Pending, срок "N/A") тоже считается последним
func (d *UserData) LatestInspection() *Inspection {
	if len(d.Inspections) == 0 {
		return nil
	}
	return &d.Inspections[0]
}

// PrependInspection добавляет запись о техосмотре в начало списка
func (d *UserData) PrependInspection(inspection Inspection) {
	d.Inspections = append([]Inspection{inspection}, d.Inspections...)
}

// PrependNotification добавляет уведомление в начало списка
func (d *UserData) PrependNotification(notification Notification) {
	d.Notifications = append([]Notification{notification}, d.Notifications...)
}

// FindFine возвращает штраф по ID (указатель на элемент списка) или nil
func (d *UserData) FindFine(id string) *Fine {
	for i := range d.Fines {
		if d.Fines[i].ID == id {
			return &d.Fines[i]
		}
	}
	return nil
}

// UnpaidFines возвращает неоплаченные штрафы
func (d *UserData) UnpaidFines() []Fine {
	unpaid := make([]Fine, 0, len(d.Fines))
	for _, f := range d.Fines {
		if f.IsUnpaid() {
			unpaid = append(unpaid, f)
		}
	}
	return unpaid
}

// HasUnpaidFines проверяет наличие неоплаченных штрафов
func (d *UserData) HasUnpaidFines() bool {
	for i := range d.Fines {
		if d.Fines[i].IsUnpaid() {
			return true
		}
	}
	return false
}

// QRPayload собирает данные для QR-кода водителя
// Возвращает nil, если нет ни одной записи о техосмотре
func (d *UserData) QRPayload() *QRPayload {
	latest := d.LatestInspection()
	if latest == nil {
		return nil
	}
	return &QRPayload{
		Name:        d.Profile.Name,
		DriverID:    d.Profile.DriverID,
		PlateNumber: d.Profile.Vehicle.PlateNumber,
		Vehicle:     d.Profile.Vehicle.Title(),
		ExpiryDate:  latest.Expiry,
		Status:      string(DocumentValid),
	}
}
