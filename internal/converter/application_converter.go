package converter

import (
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
)

func ApplicationToResponse(app *entity.DoctorApplication) *dto.ApplicationResponse {
	if app == nil {
		return nil
	}

	return &dto.ApplicationResponse{
		ID:              app.ID,
		DoctorID:        app.DoctorID,
		FullName:        app.FullName,
		Email:           app.Email,
		PhoneNumber:     app.PhoneNumber,
		Age:             app.Age,
		Gender:          app.Gender,
		Specialization:  app.Specialization,
		BMDCNumber:      app.BMDCNumber,
		CurrentHospital: app.CurrentHospital,
		ExperienceYears: app.ExperienceYears,
		LicensePDFPath:  app.LicensePDFPath,
		Status:          string(app.Status),
		CreatedAt:       app.CreatedAt,
	}
}

func ApplicationsToResponses(apps []entity.DoctorApplication) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = *ApplicationToResponse(&apps[i])
	}
	return responses
}
