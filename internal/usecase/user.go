package usecase

import (
	"context"
	"fmt"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/google/uuid"
)

// GetUsersUsecase lists every registered account
type GetUsersUsecase struct {
	users domain.UserRepository
}

func NewGetUsersUsecase(users domain.UserRepository) *GetUsersUsecase {
	return &GetUsersUsecase{users: users}
}

func (u *GetUsersUsecase) Execute(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return dto.FromUsers(users), nil
}

// DeleteUserUsecase removes an account. Admins cannot remove themselves.
type DeleteUserUsecase struct {
	users domain.UserRepository
}

func NewDeleteUserUsecase(users domain.UserRepository) *DeleteUserUsecase {
	return &DeleteUserUsecase{users: users}
}

func (u *DeleteUserUsecase) Execute(ctx context.Context, caller dto.Caller, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: user id", domain.ErrInvalidInput)
	}
	if caller.UserID == userID.String() {
		return domain.ErrForbidden
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrNotFound
	}

	if err := u.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
