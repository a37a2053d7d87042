package converter

import (
	"mediscript-server/internal/delivery/dto"
	"mediscript-server/internal/domain/entity"
)

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		UserID:               profile.UserID,
		Email:                profile.User.Email,
		FullName:             profile.FullName,
		Age:                  profile.Age,
		Gender:               profile.Gender,
		BloodGroup:           profile.BloodGroup,
		PhoneNumber:          profile.PhoneNumber,
		Address:              profile.Address,
		ChronicConditions:    profile.ChronicConditions,
		Allergies:            profile.Allergies,
		PastSurgeries:        profile.PastSurgeries,
		FamilyMedicalHistory: profile.FamilyMedicalHistory,
		ProfilePicturePath:   profile.ProfilePicturePath,
	}
}

func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientProfileResponse {
	responses := make([]dto.PatientProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientProfileToResponse(&profiles[i])
	}
	return responses
}

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		UserID:             profile.UserID,
		Email:              profile.User.Email,
		FullName:           profile.FullName,
		Age:                profile.Age,
		Gender:             profile.Gender,
		PhoneNumber:        profile.PhoneNumber,
		Specialization:     profile.Specialization,
		Department:         profile.Department,
		BMDCNumber:         profile.BMDCNumber,
		Hospital:           profile.Hospital,
		Address:            profile.Address,
		VisitingHours:      profile.VisitingHours,
		Bio:                profile.Bio,
		ExperienceYears:    profile.ExperienceYears,
		ProfilePicturePath: profile.ProfilePicturePath,
	}
}

func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorProfileResponse {
	responses := make([]dto.DoctorProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
