package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"expense-approval-service/internal/domain/company"
	"expense-approval-service/internal/domain/passwordreset"
	"expense-approval-service/internal/domain/user"
	"expense-approval-service/pkg/id"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid auth input")
)

const fallbackCurrency = "USD"

// CountryResolver maps a country name to its currency code; implemented by
// infrastructure/countries.Client.
type CountryResolver interface {
	CurrencyForCountry(ctx context.Context, country string) (string, error)
}

type Usecase struct {
	users     user.Repository
	companies company.Repository
	resets    passwordreset.Repository
	countries CountryResolver
	secret    string
	tokenTTL  time.Duration
	log       *zap.Logger
}

func NewUsecase(users user.Repository, companies company.Repository, resets passwordreset.Repository, countries CountryResolver, secret string, tokenTTL time.Duration, log *zap.Logger) *Usecase {
	return &Usecase{users: users, companies: companies, resets: resets, countries: countries, secret: secret, tokenTTL: tokenTTL, log: log}
}

type SignupInput struct {
	CompanyName string `json:"company_name"`
	AdminName   string `json:"admin_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Country     string `json:"country"`
}

type SignupDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Signup bootstraps a company and its first admin. The company's reporting
// currency comes from the country lookup; lookup failure degrades to USD
// rather than failing the signup.
func (u *Usecase) Signup(ctx context.Context, in SignupInput) (*SignupDTO, error) {
	if in.CompanyName == "" || in.AdminName == "" || in.Email == "" || in.Password == "" || in.Country == "" {
		return nil, ErrInvalidInput
	}
	if _, err := u.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := u.companies.GetByName(ctx, in.CompanyName); err == nil {
		return nil, company.ErrNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	currency := fallbackCurrency
	if code, err := u.countries.CurrencyForCountry(ctx, in.Country); err == nil {
		currency = code
	} else {
		u.log.Warn("country currency lookup failed, defaulting to USD",
			zap.String("country", in.Country), zap.Error(err))
	}

	comp := &company.Company{
		CompanyID:       id.NewID32(),
		Name:            in.CompanyName,
		Country:         in.Country,
		DefaultCurrency: currency,
	}
	if err := u.companies.Create(ctx, comp); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &user.User{
		UserID:            id.NewID32(),
		Name:              in.AdminName,
		Email:             in.Email,
		PasswordHash:      string(hash),
		Role:              user.RoleAdmin,
		TemporaryPassword: false,
		CompanyID:         comp.ID,
	}
	if err := u.users.Create(ctx, admin); err != nil {
		return nil, err
	}

	token, err := GenerateToken(admin.UserID, u.secret, u.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &SignupDTO{Message: "Company and Admin created successfully.", Token: token}, nil
}

type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninDTO struct {
	UserID            string `json:"user_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	CompanyID         string `json:"company_id"`
	TemporaryPassword bool   `json:"temporary_password"`
	Token             string `json:"token"`
}

func (u *Usecase) Signin(ctx context.Context, in SigninInput) (*SigninDTO, error) {
	acct, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	comp, err := u.companies.GetByID(ctx, acct.CompanyID)
	if err != nil {
		return nil, err
	}
	token, err := GenerateToken(acct.UserID, u.secret, u.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &SigninDTO{
		UserID:            acct.UserID,
		Name:              acct.Name,
		Email:             acct.Email,
		Role:              string(acct.Role),
		CompanyID:         comp.CompanyID,
		TemporaryPassword: acct.TemporaryPassword,
		Token:             token,
	}, nil
}

type SetPasswordInput struct {
	UserID          string `json:"user_id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// SetPassword rotates a temporary credential into a user-chosen one.
func (u *Usecase) SetPassword(ctx context.Context, in SetPasswordInput) error {
	if in.NewPassword == "" {
		return ErrInvalidInput
	}
	acct, err := u.users.GetByUserID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(in.CurrentPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	acct.PasswordHash = string(hash)
	acct.TemporaryPassword = false
	return u.users.Save(ctx, acct)
}

// ForgotPassword issues a temporary credential and files a reset record for
// an administrator to hand over. The response is uniform whether or not the
// email exists, so the endpoint cannot be used to enumerate accounts.
func (u *Usecase) ForgotPassword(ctx context.Context, email string) error {
	acct, err := u.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	temp := id.NewTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	acct.PasswordHash = string(hash)
	acct.TemporaryPassword = true
	if err := u.users.Save(ctx, acct); err != nil {
		return err
	}

	return u.resets.Create(ctx, &passwordreset.PasswordReset{
		ResetID:           id.NewID32(),
		UserID:            acct.UserID,
		UserName:          acct.Name,
		UserEmail:         acct.Email,
		TemporaryPassword: temp,
		CompanyID:         acct.CompanyID,
	})
}
