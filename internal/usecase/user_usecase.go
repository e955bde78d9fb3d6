package usecase

import (
	"context"
	"strings"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo  contract.IUserRepository
	logger    usecasecontract.IAppLogger
	validator usecasecontract.IValidator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		logger:    logger,
		validator: validator,
	}
}

// check if UserUseCase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// FetchUsers lists every account.
func (uc *UserUsecase) FetchUsers(ctx context.Context) ([]entity.User, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, err
	}
	return users, nil
}

// GetUserByID fails with NotFound for unknown ids.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		uc.logger.Errorf("failed to get user %s: %v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user", userID)
	}
	return user, nil
}

// UpdateUserStatus bans or reactivates an account.
func (uc *UserUsecase) UpdateUserStatus(ctx context.Context, userID string, isActive bool) error {
	if err := uc.userRepo.SetUserActive(ctx, userID, isActive); err != nil {
		if !apperror.IsNotFound(err) {
			uc.logger.Errorf("failed to update status of user %s: %v", userID, err)
		}
		return err
	}
	uc.logger.Infof("user %s active=%t", userID, isActive)
	return nil
}

// DeleteUser removes the account permanently. Unknown ids are ignored.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return err
	}
	return nil
}

// UpdateUserProfile stores user as given (upsert by id) and returns it.
func (uc *UserUsecase) UpdateUserProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil || strings.TrimSpace(user.ID) == "" {
		return nil, apperror.Validation("id", "is required")
	}
	if err := uc.validator.ValidateEmail(user.Email); err != nil {
		return nil, apperror.WrapValidation("email", err)
	}
	if !user.Role.Valid() {
		return nil, apperror.Validation("role", "must be one of user, admin, supplier")
	}

	owner, err := uc.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		uc.logger.Errorf("failed to check email uniqueness: %v", err)
		return nil, err
	}
	if owner != nil && owner.ID != user.ID {
		return nil, apperror.Validation("email", "already used by another account")
	}

	if err := uc.userRepo.UpsertUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to save user %s: %v", user.ID, err)
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies self-service edits. Only name, phone and company
// name can be changed this way.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for k, v := range updates {
		switch k {
		case "name":
			if name, ok := v.(string); ok {
				name = strings.TrimSpace(name)
				if name == "" {
					return nil, apperror.Validation("name", "must not be empty")
				}
				user.Name = name
			}
		case "phone":
			if phone, ok := v.(string); ok {
				user.Phone = optionalString(phone)
			}
		case "company_name":
			if companyName, ok := v.(string); ok {
				user.CompanyName = optionalString(companyName)
			}
		}
	}

	if err := uc.userRepo.UpsertUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, err
	}
	return user, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
