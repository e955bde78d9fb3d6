package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
	"golang.org/x/net/idna"
)

// User-facing rejection messages.
const (
	msgAccountBanned      = "تم حظر هذا الحساب. يرجى التواصل مع الإدارة."
	msgRegistrationClosed = "التسجيل مغلق حالياً."

	newUserName  = "مستخدم جديد"
	newAdminName = "Admin User"
)

// AuthUseCase implements passwordless email sign-in with auto-registration.
type AuthUseCase struct {
	userRepo      contract.IUserRepository
	settingsRepo  contract.ISettingsRepository
	jwtService    JWTService
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	mailService   contract.IEmailService
	now           func() time.Time
}

// NewAuthUseCase creates a new AuthUseCase instance.
func NewAuthUseCase(
	userRepo contract.IUserRepository,
	settingsRepo contract.ISettingsRepository,
	jwtService JWTService,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:      userRepo,
		settingsRepo:  settingsRepo,
		jwtService:    jwtService,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		config:        cfg,
		now:           time.Now,
	}
}

var _ usecasecontract.IAuthUseCase = (*AuthUseCase)(nil)

// SetMailService enables welcome emails for auto-registered accounts.
func (uc *AuthUseCase) SetMailService(mailService contract.IEmailService) {
	uc.mailService = mailService
}

// LoginUser signs in by email, creating the account on first sight when allowed.
func (uc *AuthUseCase) LoginUser(ctx context.Context, email string) (*entity.User, string, string, error) {
	normalized, err := uc.normalizeEmail(email)
	if err != nil {
		go metrics.IncLogin(metrics.LoginInvalidEmail)
		return nil, "", "", err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, normalized)
	if err != nil {
		go metrics.IncLogin(metrics.LoginError)
		uc.logger.Errorf("failed to look up user by email: %v", err)
		return nil, "", "", err
	}

	if user != nil {
		if !user.IsActive {
			go metrics.IncLogin(metrics.LoginBanned)
			uc.logger.Infof("login rejected for banned user %s", user.ID)
			return nil, "", "", apperror.AuthRejected(apperror.ReasonBanned, msgAccountBanned)
		}
		go metrics.IncLogin(metrics.LoginOK)
		return uc.issueTokens(user)
	}

	user, err = uc.register(ctx, normalized)
	if err != nil {
		return nil, "", "", err
	}
	go metrics.IncLogin(metrics.LoginCreated)
	return uc.issueTokens(user)
}

func (uc *AuthUseCase) register(ctx context.Context, email string) (*entity.User, error) {
	if uc.config.GetAllowAdminEmailProvisioning() && strings.Contains(email, "admin") {
		uc.logger.Warnf("provisioning admin account from email keyword: %s", email)
		user, err := uc.createUser(ctx, email, newAdminName, entity.UserRoleAdmin)
		if errors.Is(err, contract.ErrEmailTaken) {
			return uc.concurrentlyRegistered(ctx, email)
		}
		return user, err
	}

	settings, err := uc.settingsRepo.GetSettings(ctx)
	if err != nil {
		go metrics.IncLogin(metrics.LoginError)
		uc.logger.Errorf("failed to load settings: %v", err)
		return nil, err
	}
	if !settings.RegistrationOpen {
		go metrics.IncLogin(metrics.LoginClosed)
		return nil, apperror.AuthRejected(apperror.ReasonRegistrationClosed, msgRegistrationClosed)
	}

	user, err := uc.createUser(ctx, email, newUserName, entity.DefaultRole())
	if errors.Is(err, contract.ErrEmailTaken) {
		return uc.concurrentlyRegistered(ctx, email)
	}
	if err != nil {
		return nil, err
	}
	uc.sendWelcome(ctx, user)
	return user, nil
}

// concurrentlyRegistered returns the account a parallel first login created
// between our lookup and our insert.
func (uc *AuthUseCase) concurrentlyRegistered(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s reported as taken but not found", email)
	}
	if !user.IsActive {
		return nil, apperror.AuthRejected(apperror.ReasonBanned, msgAccountBanned)
	}
	return user, nil
}

func (uc *AuthUseCase) createUser(ctx context.Context, email, name string, role entity.UserRole) (*entity.User, error) {
	user := &entity.User{
		ID:         uc.uuidGenerator.NewUUID(),
		Email:      email,
		Name:       name,
		Role:       role,
		IsActive:   true,
		JoinedDate: uc.now().UTC().Format(dateLayout),
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, contract.ErrEmailTaken) {
			uc.logger.Errorf("failed to create user: %v", err)
		}
		return nil, err
	}
	uc.logger.Infof("user created id=%s role=%s", user.ID, user.Role)
	return user, nil
}

func (uc *AuthUseCase) sendWelcome(ctx context.Context, user *entity.User) {
	if uc.mailService == nil {
		return
	}
	mailCtx := context.WithoutCancel(ctx)
	go func() {
		body := fmt.Sprintf("مرحباً بك في دليل موردين مصر.\n\nتم إنشاء حسابك بالبريد %s.", user.Email)
		if err := uc.mailService.SendEmail(mailCtx, user.Email, "مرحباً بك في موردين مصر", body); err != nil {
			uc.logger.Warnf("failed to send welcome email to user %s: %v", user.ID, err)
		}
	}()
}

// LoginWithOAuth signs in with an email verified by an identity provider and
// fills in the display name for freshly created accounts.
func (uc *AuthUseCase) LoginWithOAuth(ctx context.Context, email, name string) (*entity.User, string, string, error) {
	user, access, refresh, err := uc.LoginUser(ctx, email)
	if err != nil {
		return nil, "", "", err
	}
	if name != "" && (user.Name == newUserName || user.Name == newAdminName) {
		user.Name = name
		if err := uc.userRepo.UpsertUser(ctx, user); err != nil {
			uc.logger.Warnf("failed to store oauth display name for %s: %v", user.ID, err)
		}
	}
	return user, access, refresh, nil
}

// Authenticate resolves an access token to an active user.
func (uc *AuthUseCase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, apperror.AuthRejected(apperror.ReasonInvalidToken, "invalid or expired token")
	}
	return uc.activeUser(ctx, claims.UserID)
}

// RefreshToken rotates both tokens.
func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", apperror.AuthRejected(apperror.ReasonInvalidToken, "invalid or expired refresh token")
	}
	user, err := uc.activeUser(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	_, access, refresh, err := uc.issueTokens(user)
	return access, refresh, err
}

// ProvisionAdmin is the explicit seed path for admin accounts: it creates the
// account or promotes and reactivates an existing one.
func (uc *AuthUseCase) ProvisionAdmin(ctx context.Context, email, name string) (*entity.User, error) {
	normalized, err := uc.normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = newAdminName
	}
	user, err := uc.userRepo.GetUserByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		created, err := uc.createUser(ctx, normalized, name, entity.UserRoleAdmin)
		if !errors.Is(err, contract.ErrEmailTaken) {
			return created, err
		}
		if user, err = uc.userRepo.GetUserByEmail(ctx, normalized); err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("user %s reported as taken but not found", normalized)
		}
	}
	user.Role = entity.UserRoleAdmin
	user.IsActive = true
	if err := uc.userRepo.UpsertUser(ctx, user); err != nil {
		return nil, err
	}
	uc.logger.Infof("user %s promoted to admin", user.ID)
	return user, nil
}

func (uc *AuthUseCase) activeUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.AuthRejected(apperror.ReasonInvalidToken, "user no longer exists")
	}
	if !user.IsActive {
		return nil, apperror.AuthRejected(apperror.ReasonBanned, msgAccountBanned)
	}
	return user, nil
}

func (uc *AuthUseCase) issueTokens(user *entity.User) (*entity.User, string, string, error) {
	access, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", "", err
	}
	refresh, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// normalizeEmail trims the address and converts an internationalized domain
// to its ASCII form so lookups compare like with like.
func (uc *AuthUseCase) normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return "", apperror.Validation("email", "invalid email address")
	}
	domain, err := idna.Lookup.ToASCII(email[at+1:])
	if err != nil {
		return "", apperror.WrapValidation("email", err)
	}
	normalized := email[:at] + "@" + domain
	if err := uc.validator.ValidateEmail(normalized); err != nil {
		return "", apperror.WrapValidation("email", err)
	}
	return normalized, nil
}
