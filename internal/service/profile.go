package service

import (
	"github.com/planloop/planloop/internal/model"
	"github.com/planloop/planloop/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) ByUserID(userID string) (*model.Profile, error) {
	return s.profileRepo.ByUserID(userID)
}

// Save upserts the profile and returns the stored record.
func (s *ProfileService) Save(userID, whoIAm, whatIWantToAchieve, whatIWantInLife string) (*model.Profile, error) {
	profile := &model.Profile{
		UserID:             userID,
		WhoIAm:             whoIAm,
		WhatIWantToAchieve: whatIWantToAchieve,
		WhatIWantInLife:    whatIWantInLife,
	}

	err := s.profileRepo.Upsert(profile)
	if err != nil {
		return nil, err
	}

	return s.profileRepo.ByUserID(userID)
}
