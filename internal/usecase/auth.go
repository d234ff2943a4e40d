package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/Rrens/space-reservation/internal/security"
	"github.com/google/uuid"
)

const logoutMessage = "로그아웃이 완료되었습니다"

// Authenticator checks a credential pair and returns the matching user
type Authenticator interface {
	Execute(ctx context.Context, req dto.CredentialsRequest) (*dto.UserDTO, error)
}

// LoginUsecase matches credentials against the stored bcrypt hash
type LoginUsecase struct {
	users  domain.UserRepository
	hasher *security.PasswordHasher
}

func NewLoginUsecase(users domain.UserRepository, hasher *security.PasswordHasher) *LoginUsecase {
	return &LoginUsecase{users: users, hasher: hasher}
}

func (u *LoginUsecase) Execute(ctx context.Context, req dto.CredentialsRequest) (*dto.UserDTO, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !u.hasher.Compare(user.PasswordHash, req.Password) {
		return nil, NewInvalidCredentialsError()
	}

	result := dto.FromUser(user)
	return &result, nil
}

// VerifyCredentialsUsecase is the session entry point. Rejected credentials
// yield (nil, nil) so the caller can treat them as a failed login; any other
// failure is returned.
type VerifyCredentialsUsecase struct {
	login Authenticator
}

func NewVerifyCredentialsUsecase(login Authenticator) *VerifyCredentialsUsecase {
	return &VerifyCredentialsUsecase{login: login}
}

func (u *VerifyCredentialsUsecase) Execute(ctx context.Context, req dto.CredentialsRequest) (*dto.UserDTO, error) {
	user, err := u.verify(ctx, req)
	if err == nil {
		return user, nil
	}

	if authErr, ok := AsAuthError(err); ok {
		switch authErr.Kind {
		case KindInvalidCredentials, KindValidation:
			return nil, nil
		}
	}
	return nil, err
}

func (u *VerifyCredentialsUsecase) verify(ctx context.Context, req dto.CredentialsRequest) (*dto.UserDTO, error) {
	if issues := security.Validate(req); issues != nil {
		return nil, NewValidationError(issues)
	}
	return u.login.Execute(ctx, req)
}

// CheckEmailDuplicationUseCase reports whether an email is already registered
type CheckEmailDuplicationUseCase struct {
	users domain.UserRepository
}

func NewCheckEmailDuplicationUseCase(users domain.UserRepository) *CheckEmailDuplicationUseCase {
	return &CheckEmailDuplicationUseCase{users: users}
}

func (u *CheckEmailDuplicationUseCase) Execute(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if issues := security.Validate(dto.EmailRequest{Email: email}); issues != nil {
		return false, NewValidationError(issues)
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// SignupUsecase registers a new account with the user type
type SignupUsecase struct {
	users  domain.UserRepository
	hasher *security.PasswordHasher
}

func NewSignupUsecase(users domain.UserRepository, hasher *security.PasswordHasher) *SignupUsecase {
	return &SignupUsecase{users: users, hasher: hasher}
}

func (u *SignupUsecase) Execute(ctx context.Context, req dto.SignupRequest) (*dto.UserDTO, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if issues := security.Validate(req); issues != nil {
		return nil, signupError(issues)
	}

	existing, err := u.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Type:         domain.UserTypeUser,
	}
	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}

	result := dto.FromUser(user)
	return &result, nil
}

// IssueTokensUsecase signs an access/refresh pair for a verified user
type IssueTokensUsecase struct {
	tokens *security.JWTManager
}

func NewIssueTokensUsecase(tokens *security.JWTManager) *IssueTokensUsecase {
	return &IssueTokensUsecase{tokens: tokens}
}

func (u *IssueTokensUsecase) Execute(user dto.UserDTO) (*dto.TokenDTO, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id", domain.ErrInvalidInput)
	}

	access, refresh, expiresIn, err := u.tokens.GenerateTokenPair(&domain.User{
		ID:    id,
		Email: user.Email,
		Name:  user.Name,
		Type:  domain.UserType(user.Type),
	})
	if err != nil {
		return nil, err
	}

	return &dto.TokenDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
	}, nil
}

// RefreshTokensUsecase exchanges a refresh token for a new pair, reloading
// the user so role changes take effect
type RefreshTokensUsecase struct {
	users  domain.UserRepository
	tokens *security.JWTManager
	issue  *IssueTokensUsecase
}

func NewRefreshTokensUsecase(users domain.UserRepository, tokens *security.JWTManager) *RefreshTokensUsecase {
	return &RefreshTokensUsecase{users: users, tokens: tokens, issue: NewIssueTokensUsecase(tokens)}
}

func (u *RefreshTokensUsecase) Execute(ctx context.Context, refreshToken string) (*dto.LoginDTO, error) {
	userID, err := u.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, NewInvalidCredentialsError()
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewInvalidCredentialsError()
	}

	userDTO := dto.FromUser(user)
	tokens, err := u.issue.Execute(userDTO)
	if err != nil {
		return nil, err
	}

	return &dto.LoginDTO{User: userDTO, Tokens: *tokens}, nil
}

// LogoutUsecase has no side effects; cookies are cleared by the handler
type LogoutUsecase struct{}

func NewLogoutUsecase() *LogoutUsecase {
	return &LogoutUsecase{}
}

func (u *LogoutUsecase) Execute() dto.LogoutDTO {
	return dto.LogoutDTO{Success: true, Message: logoutMessage}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
