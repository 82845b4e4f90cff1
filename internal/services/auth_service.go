package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carrent/internal/config"
	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"
	"carrent/pkg/logger"
	"carrent/pkg/sms"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService interface {
	SendCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (*AuthResponse, error)
	SignIn(ctx context.Context, phone string) (*AuthResponse, error)
	Profile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

type authService struct {
	userRepo    interfaces.UserRepository
	cache       CacheService
	smsProvider sms.SMSProvider
	cfg         *config.SecurityConfig
	smsFrom     string
	logger      *logger.Logger
}

func NewAuthService(
	userRepo interfaces.UserRepository,
	cache CacheService,
	smsProvider sms.SMSProvider,
	cfg *config.SecurityConfig,
	smsFrom string,
	log *logger.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		cache:       cache,
		smsProvider: smsProvider,
		cfg:         cfg,
		smsFrom:     smsFrom,
		logger:      log,
	}
}

// SendCode generates a one-time code, stores it under the normalized phone
// and delivers it over SMS. Requests are rate limited per phone per hour.
func (s *authService) SendCode(ctx context.Context, phone string) error {
	if !utils.IsValidPhone(phone) {
		return fmt.Errorf("invalid phone number: %s", utils.MaskPhone(phone))
	}
	phone = utils.NormalizePhone(phone)

	rateKey := utils.CacheRateLimitPrefix + "otp:" + phone
	count, err := s.cache.Increment(ctx, rateKey)
	if err == nil && count == 1 {
		if err := s.cache.SetExpire(ctx, rateKey, time.Hour); err != nil {
			s.logger.WithError(err).Warn("Failed to set OTP rate limit expiry")
		}
	}
	if err == nil && count > utils.OTPRateLimit {
		entry := s.logger.WithField("phone", utils.MaskPhone(phone))
		if ttl, terr := s.cache.GetTTL(ctx, rateKey); terr == nil && ttl > 0 {
			entry = entry.WithField("retry_in", ttl.Round(time.Second).String())
		}
		entry.Warn("Verification code rate limit reached")
		return ErrOTPRateLimited
	}

	code := utils.GenerateOTP()
	if err := s.cache.Set(ctx, utils.CacheOTPPrefix+phone, code, s.cfg.OTPExpiry); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	_, err = s.smsProvider.SendSMS(ctx, &sms.SMSRequest{
		To:      phone,
		From:    s.smsFrom,
		Message: fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(s.cfg.OTPExpiry.Minutes())),
		Type:    "otp",
	})
	if err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}

	s.logger.WithField("phone", utils.MaskPhone(phone)).Info("Verification code sent")
	return nil
}

// VerifyCode checks the code against the stored one. On first verification the
// user is created with a name derived from the phone's last digits. A matching
// code is single-use.
func (s *authService) VerifyCode(ctx context.Context, phone, code string) (*AuthResponse, error) {
	phone = utils.NormalizePhone(phone)

	var stored string
	err := s.cache.Get(ctx, utils.CacheOTPPrefix+phone, &stored)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, ErrInvalidOTP
		}
		return nil, fmt.Errorf("failed to read verification code: %w", err)
	}
	if !utils.ValidateOTP(code) || stored != code {
		return nil, ErrInvalidOTP
	}

	if err := s.cache.Delete(ctx, utils.CacheOTPPrefix+phone); err != nil {
		s.logger.WithError(err).Warn("Failed to delete used verification code")
	}

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, interfaces.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user = &models.User{
			Name:            "User " + utils.PhoneLast4(phone),
			Phone:           phone,
			Role:            models.RoleUser,
			IsPhoneVerified: true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.WithUserID(user.ID).Info("User registered")
	} else if !user.IsPhoneVerified {
		if err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{"is_phone_verified": true}); err != nil {
			return nil, fmt.Errorf("failed to mark phone verified: %w", err)
		}
		user.IsPhoneVerified = true
	}

	return s.issueToken(ctx, user)
}

// SignIn issues a token for an existing, previously verified phone. New phones
// must go through the code flow first.
func (s *authService) SignIn(ctx context.Context, phone string) (*AuthResponse, error) {
	phone = utils.NormalizePhone(phone)

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsPhoneVerified {
		return nil, ErrPhoneNotVerified
	}

	return s.issueToken(ctx, user)
}

func (s *authService) Profile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) issueToken(ctx context.Context, user *models.User) (*AuthResponse, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.JWTAccessTokenTTL)

	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{"last_login_at": &now}); err != nil {
		s.logger.WithError(err).WithUserID(user.ID).Warn("Failed to record login time")
	}
	user.LastLoginAt = &now

	return &AuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
