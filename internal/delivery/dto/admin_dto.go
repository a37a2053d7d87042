package dto

type AdminSummaryResponse struct {
	Doctors             int64 `json:"doctors"`
	Patients            int64 `json:"patients"`
	Medicines           int64 `json:"medicines"`
	PendingApplications int64 `json:"pending_applications"`
	PendingRequests     int64 `json:"pending_requests"`
}
