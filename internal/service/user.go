package service

import (
	"github.com/planloop/planloop/internal/model"
	"github.com/planloop/planloop/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepo.ByID(id)
}
