package converter

import (
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartItemUnitPrice is the inventory price of the staged line, zero for
// custom medicines.
func CartItemUnitPrice(item *entity.CartItem) decimal.Decimal {
	if item.PrescriptionMedicine.Medicine != nil {
		return item.PrescriptionMedicine.Medicine.Price
	}
	return decimal.Zero
}

func CartItemToResponse(item *entity.CartItem) *dto.CartItemResponse {
	if item == nil {
		return nil
	}

	unitPrice := CartItemUnitPrice(item)

	return &dto.CartItemResponse{
		CartID:                 item.ID,
		PrescriptionMedicineID: item.PrescriptionMedicineID,
		MedicineName:           lineName(&item.PrescriptionMedicine),
		Dosage:                 item.PrescriptionMedicine.Dosage,
		Duration:               item.PrescriptionMedicine.Duration,
		UnitPrice:              unitPrice,
		Quantity:               item.Quantity,
		LineTotal:              unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
	}
}

func CartItemsToResponse(items []entity.CartItem) *dto.CartResponse {
	responses := make([]dto.CartItemResponse, len(items))
	total := decimal.Zero
	for i := range items {
		responses[i] = *CartItemToResponse(&items[i])
		total = total.Add(responses[i].LineTotal)
	}

	return &dto.CartResponse{
		Items:      responses,
		TotalPrice: total,
	}
}

func RequestItemToResponse(item *entity.RefillRequestItem) dto.RequestItemResponse {
	return dto.RequestItemResponse{
		MedicineName: lineName(&item.PrescriptionMedicine),
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		TotalPrice:   item.TotalPrice,
	}
}

func RefillRequestToResponse(request *entity.RefillRequest, withItems bool) *dto.RefillRequestResponse {
	if request == nil {
		return nil
	}

	total := decimal.Zero
	items := make([]dto.RequestItemResponse, 0, len(request.Items))
	for i := range request.Items {
		total = total.Add(request.Items[i].TotalPrice)
		if withItems {
			items = append(items, RequestItemToResponse(&request.Items[i]))
		}
	}

	response := &dto.RefillRequestResponse{
		ID:             request.ID,
		PatientID:      request.PatientID,
		PatientName:    request.Patient.FullName,
		Address:        request.Address,
		Notes:          request.Notes,
		Status:         string(request.Status),
		DeliveryMethod: request.DeliveryMethod,
		SubmittedAt:    request.SubmittedAt,
		ItemCount:      len(request.Items),
		TotalPrice:     total,
	}
	if withItems {
		response.Items = items
	}

	return response
}

func RefillRequestsToResponses(requests []entity.RefillRequest, withItems bool) []dto.RefillRequestResponse {
	responses := make([]dto.RefillRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *RefillRequestToResponse(&requests[i], withItems)
	}
	return responses
}

func HistoryToResponses(entries []entity.RefillRequestHistory) []dto.RequestHistoryResponse {
	responses := make([]dto.RequestHistoryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.RequestHistoryResponse{
			ID:         entry.ID,
			RequestID:  entry.RequestID,
			ArchivedAt: entry.ArchivedAt,
		}
	}
	return responses
}
