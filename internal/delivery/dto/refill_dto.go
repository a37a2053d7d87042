package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type AddToCartRequest struct {
	PrescriptionMedicineID uint `json:"prescription_medicine_id" validate:"required"`
	Quantity               int  `json:"quantity" validate:"omitempty,gte=1"`
}

type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SubmitRefillRequest struct {
	Address        string `json:"address" validate:"required"`
	Notes          string `json:"notes"`
	DeliveryMethod string `json:"delivery_method"`
}

// Response DTOs

type CartItemResponse struct {
	CartID                 uint            `json:"cart_id"`
	PrescriptionMedicineID uint            `json:"prescription_medicine_id"`
	MedicineName           string          `json:"medicine_name"`
	Dosage                 string          `json:"dosage,omitempty"`
	Duration               string          `json:"duration,omitempty"`
	UnitPrice              decimal.Decimal `json:"unit_price"`
	Quantity               int             `json:"quantity"`
	LineTotal              decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

type SubmitRefillResponse struct {
	RequestID uint `json:"request_id"`
}

type RequestItemResponse struct {
	MedicineName string          `json:"medicine_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

type RefillRequestResponse struct {
	ID             uint                  `json:"id"`
	PatientID      string                `json:"patient_id"`
	PatientName    string                `json:"patient_name,omitempty"`
	Address        string                `json:"address"`
	Notes          string                `json:"notes,omitempty"`
	Status         string                `json:"status"`
	DeliveryMethod string                `json:"delivery_method,omitempty"`
	SubmittedAt    time.Time             `json:"submitted_at"`
	ItemCount      int                   `json:"item_count"`
	TotalPrice     decimal.Decimal       `json:"total_price"`
	Items          []RequestItemResponse `json:"items,omitempty"`
}

type RefillRequestListResponse struct {
	Requests []RefillRequestResponse `json:"requests"`
	Total    int                     `json:"total"`
}

type ArchiveResponse struct {
	Archived int `json:"archived"`
}

type RequestHistoryResponse struct {
	ID         uint      `json:"id"`
	RequestID  uint      `json:"request_id"`
	ArchivedAt time.Time `json:"archived_at"`
}

type RequestHistoryListResponse struct {
	Entries []RequestHistoryResponse `json:"entries"`
	Total   int                      `json:"total"`
}
