package usecase

import (
	"context"
	"time"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type UpdateProfileInput struct {
	DisplayName string
	Username    string
	Phone       string
	Address     string
}

func (uc *UserUseCase) GetUserProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Address != "" {
		user.Address = input.Address
	}

	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user profile", err)
	}

	return user, nil
}

// Admin account management below. Handlers gate these behind the admin role;
// the self-protection rules live here so they hold for every caller.

type CreateManagedUserInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

func (uc *UserUseCase) ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return uc.userRepo.List(ctx, pageSize, offset)
}

func (uc *UserUseCase) CreateManagedUser(ctx context.Context, input CreateManagedUserInput) (*entity.User, error) {
	if input.Role != entity.RoleManager && input.Role != entity.RoleAdmin {
		return nil, errors.BadRequest("Role must be manager or admin", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.DisplayName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:          uid,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Role:        input.Role,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	return user, nil
}

type UpdateManagedUserInput struct {
	DisplayName string
	Role        string
}

func (uc *UserUseCase) UpdateManagedUser(ctx context.Context, callerID, userID string, input UpdateManagedUserInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Role != "" {
		switch input.Role {
		case entity.RoleBuyer, entity.RoleManager, entity.RoleAdmin:
		default:
			return nil, errors.BadRequest("Invalid role", nil)
		}
		if callerID == userID && input.Role != entity.RoleAdmin {
			return nil, errors.BadRequest("Admins cannot demote themselves", nil)
		}
		user.Role = input.Role
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}

	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user", err)
	}

	return user, nil
}

func (uc *UserUseCase) DeleteManagedUser(ctx context.Context, callerID, userID string) error {
	if callerID == userID {
		return errors.BadRequest("Admins cannot delete their own account", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return errors.NotFound("User", err)
	}

	if err := uc.firebaseAuth.DeleteUser(ctx, userID); err != nil {
		return errors.Internal("Failed to delete user from authentication provider", err)
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return errors.Internal("Failed to delete user record", err)
	}

	return nil
}
