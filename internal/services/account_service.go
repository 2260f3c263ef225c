package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/helpers"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

const mfaCodeTTL = 5 * time.Minute

type AccountService struct {
	accountRepo models.AccountRepo
	redisClient *redis.Client
	logger      *slog.Logger
}

func NewAccountService(accountRepo models.AccountRepo, redisClient *redis.Client, logger *slog.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (as *AccountService) RegisterCustomer(ctx context.Context, account *models.Account) (*models.Account, error) {
	account.Role = models.RoleCustomer
	return as.register(ctx, account)
}

func (as *AccountService) RegisterSupplier(ctx context.Context, account *models.Account) (*models.Account, error) {
	account.Role = models.RoleSupplier
	if strings.TrimSpace(account.CompanyName) == "" {
		return nil, fmt.Errorf("company name is required for suppliers")
	}
	// New suppliers accept schedule assignments until they opt out.
	account.IsAvailable = true
	return as.register(ctx, account)
}

func (as *AccountService) register(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := models.Validate.Struct(account); err != nil {
		return nil, fmt.Errorf("invalid account data: %v", err)
	}
	if !helpers.IsPasswordStrong(account.Password) {
		return nil, fmt.Errorf("password is not strong enough")
	}

	hash, err := helpers.HashPassword(account.Password)
	if err != nil {
		return nil, err
	}
	account.Password = hash
	account.MFAEnabled = false

	created, err := as.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		return nil, err
	}
	sanitized := created.Sanitized()
	return &sanitized, nil
}

// Authenticate verifies credentials. When MFA is enabled no token is issued;
// the caller must finish the challenge via VerifyMFA.
func (as *AccountService) Authenticate(ctx context.Context, email, password string) (*models.Account, string, bool, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, "", false, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, "", false, fmt.Errorf("invalid password format: %v", err)
	}

	account, err := as.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, "", false, fmt.Errorf("invalid email or password")
	}
	if !helpers.CheckPassword(account.Password, password) {
		return nil, "", false, fmt.Errorf("invalid email or password")
	}

	sanitized := account.Sanitized()
	if account.MFAEnabled {
		return &sanitized, "", true, nil
	}

	token, err := as.issueToken(account)
	if err != nil {
		return nil, "", false, err
	}
	return &sanitized, token, false, nil
}

// VerifyPassword re-checks the current password for sensitive actions.
func (as *AccountService) VerifyPassword(ctx context.Context, userID primitive.ObjectID, password string) error {
	account, err := as.accountRepo.GetAccountByID(ctx, userID)
	if err != nil {
		return err
	}
	if !helpers.CheckPassword(account.Password, password) {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// RequestMFA generates a single-use challenge code with a short TTL.
// Delivery is out of band; outside production the code is logged.
func (as *AccountService) RequestMFA(ctx context.Context, email string) error {
	if as.redisClient == nil {
		return fmt.Errorf("MFA is unavailable")
	}

	account, err := as.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("invalid email")
	}

	code, err := helpers.GenerateMFACode()
	if err != nil {
		return err
	}

	key := mfaKey(account.Email)
	if err := as.redisClient.Set(ctx, key, code, mfaCodeTTL).Err(); err != nil {
		return fmt.Errorf("failed to store MFA code: %v", err)
	}

	as.logger.Debug("MFA code issued", "email", account.Email, "code", code)
	return nil
}

// VerifyMFA consumes the challenge code and issues the session token.
func (as *AccountService) VerifyMFA(ctx context.Context, email, code string) (*models.Account, string, error) {
	if as.redisClient == nil {
		return nil, "", fmt.Errorf("MFA is unavailable")
	}

	account, err := as.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid code")
	}

	key := mfaKey(account.Email)
	stored, err := as.redisClient.Get(ctx, key).Result()
	if err != nil || stored != strings.TrimSpace(code) {
		return nil, "", fmt.Errorf("invalid or expired code")
	}

	// Single use.
	as.redisClient.Del(ctx, key)

	token, err := as.issueToken(account)
	if err != nil {
		return nil, "", err
	}
	sanitized := account.Sanitized()
	return &sanitized, token, nil
}

// ToggleMFA flips the MFA flag after password verification.
func (as *AccountService) ToggleMFA(ctx context.Context, userID primitive.ObjectID, password string, enabled bool) (*models.Account, error) {
	if err := as.VerifyPassword(ctx, userID, password); err != nil {
		return nil, err
	}
	updated, err := as.accountRepo.UpdateAccount(ctx, userID, map[string]interface{}{"mfa_enabled": enabled})
	if err != nil {
		return nil, err
	}
	sanitized := updated.Sanitized()
	return &sanitized, nil
}

func (as *AccountService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.Account, error) {
	account, err := as.accountRepo.GetAccountByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sanitized := account.Sanitized()
	return &sanitized, nil
}

func (as *AccountService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update map[string]interface{}) (*models.Account, error) {
	// Fields that must never arrive through a profile update.
	delete(update, "role")
	delete(update, "password")
	delete(update, "email")
	delete(update, "mfa_enabled")
	if len(update) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	updated, err := as.accountRepo.UpdateAccount(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	sanitized := updated.Sanitized()
	return &sanitized, nil
}

// SetAvailability toggles whether a supplier receives new schedule assignments.
func (as *AccountService) SetAvailability(ctx context.Context, userID primitive.ObjectID, available bool) (*models.Account, error) {
	account, err := as.accountRepo.GetAccountByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.IsSupplier() {
		return nil, fmt.Errorf("only suppliers have an availability flag")
	}

	updated, err := as.accountRepo.UpdateAccount(ctx, userID, map[string]interface{}{"is_available": available})
	if err != nil {
		return nil, err
	}
	sanitized := updated.Sanitized()
	return &sanitized, nil
}

func (as *AccountService) ListSuppliers(ctx context.Context, onlyAvailable bool) ([]*models.Account, error) {
	return as.accountRepo.ListSuppliers(ctx, onlyAvailable)
}

func (as *AccountService) issueToken(account *models.Account) (string, error) {
	token, err := helpers.IssueToken(account.ID.Hex(), account.Email, string(account.Role), account.FullName, account.CompanyName)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %v", err)
	}
	return token, nil
}

func mfaKey(email string) string {
	return "mfa:" + strings.ToLower(email)
}
