package converter

import (
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
)

func MedicineToResponse(m *entity.Medicine) *dto.MedicineResponse {
	if m == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:          m.ID,
		Name:        m.Name,
		Type:        m.Type,
		Strength:    m.Strength,
		GenericName: m.GenericName,
		BatchNo:     m.BatchNo,
		Category:    m.Category,
		Quantity:    m.Quantity,
		Price:       m.Price,
		Mfd:         m.Mfd,
		Exp:         m.Exp,
		Status:      string(m.Status),
	}
}

func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}

func MedicineToRefillQueueItem(m *entity.Medicine) *dto.RefillQueueItemResponse {
	if m == nil {
		return nil
	}

	return &dto.RefillQueueItemResponse{
		MedicineResponse: *MedicineToResponse(m),
		Reason:           string(m.RefillReason),
		MovedToRefillAt:  m.MovedToRefillAt,
	}
}

func MedicinesToRefillQueueItems(medicines []entity.Medicine) []dto.RefillQueueItemResponse {
	items := make([]dto.RefillQueueItemResponse, len(medicines))
	for i := range medicines {
		items[i] = *MedicineToRefillQueueItem(&medicines[i])
	}
	return items
}
