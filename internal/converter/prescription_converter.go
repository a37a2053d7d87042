package converter

import (
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
)

// CustomMedicineName is shown for lines with no backing inventory record
const CustomMedicineName = "Custom Medicine"

func lineName(line *entity.PrescriptionMedicine) string {
	if line.Medicine != nil {
		return line.Medicine.Name
	}
	return CustomMedicineName
}

func PrescriptionLineToResponse(line *entity.PrescriptionMedicine) *dto.PrescriptionLineResponse {
	if line == nil {
		return nil
	}

	return &dto.PrescriptionLineResponse{
		ID:         line.ID,
		Name:       lineName(line),
		Dosage:     line.Dosage,
		Timing:     line.Timing,
		Duration:   line.Duration,
		Notes:      line.Notes,
		Refillable: line.Refillable,
		IsCustom:   line.IsCustom(),
	}
}

func PrescriptionLinesToResponses(lines []entity.PrescriptionMedicine) []dto.PrescriptionLineResponse {
	responses := make([]dto.PrescriptionLineResponse, len(lines))
	for i := range lines {
		responses[i] = *PrescriptionLineToResponse(&lines[i])
	}
	return responses
}

func PrescriptionToDetail(p *entity.Prescription) *dto.PrescriptionDetailResponse {
	if p == nil {
		return nil
	}

	tests := make([]string, len(p.Tests))
	for i, t := range p.Tests {
		tests[i] = t.TestName
	}

	return &dto.PrescriptionDetailResponse{
		ID:          p.ID,
		PatientID:   p.PatientID,
		PatientName: p.Patient.FullName,
		DoctorName:  p.Doctor.FullName,
		Symptoms:    p.Symptoms,
		Diagnosis:   p.Diagnosis,
		CreatedAt:   p.CreatedAt,
		Tests:       tests,
		Medicines:   PrescriptionLinesToResponses(p.Medicines),
	}
}

// PrescriptionToSummary builds a list row; refillStatus is computed by the
// usecase from the per-line predicate.
func PrescriptionToSummary(p *entity.Prescription, refillStatus string) dto.PrescriptionSummaryResponse {
	return dto.PrescriptionSummaryResponse{
		ID:           p.ID,
		DoctorName:   p.Doctor.FullName,
		Diagnosis:    p.Diagnosis,
		CreatedAt:    p.CreatedAt,
		RefillStatus: refillStatus,
	}
}
