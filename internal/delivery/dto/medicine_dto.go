package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type AddMedicineRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Type        string          `json:"type"`
	Strength    string          `json:"strength"`
	GenericName string          `json:"generic_name"`
	BatchNo     string          `json:"batch_no"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Mfd         string          `json:"mfd" validate:"required"` // YYYY-MM-DD
	Exp         string          `json:"exp" validate:"required"` // YYYY-MM-DD
}

type RefillMedicineRequest struct {
	Quantity int             `json:"quantity" validate:"required,gte=1"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Mfd      string          `json:"mfd" validate:"required"`
	Exp      string          `json:"exp" validate:"required"`
}

// Response DTOs

type MedicineResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type,omitempty"`
	Strength    string          `json:"strength,omitempty"`
	GenericName string          `json:"generic_name,omitempty"`
	BatchNo     string          `json:"batch_no,omitempty"`
	Category    string          `json:"category,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Mfd         time.Time       `json:"mfd"`
	Exp         time.Time       `json:"exp"`
	Status      string          `json:"status"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}

type RefillQueueItemResponse struct {
	MedicineResponse
	Reason          string     `json:"reason"`
	MovedToRefillAt *time.Time `json:"moved_to_refill_at"`
}

type RefillQueueListResponse struct {
	Items []RefillQueueItemResponse `json:"items"`
	Total int                       `json:"total"`
}

type RetireSweepResponse struct {
	Processed int `json:"processed"`
}
