package services

import (
	"errors"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/auth"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/notification"
	"github.com/shashiranjanraj/orderdesk/pkg/validate"
	"gorm.io/gorm"
)

// RegisterInput is the self-service signup payload.
type RegisterInput struct {
	Username             string `json:"username" validate:"required|alpha_dash|max:150"`
	Email                string `json:"email" validate:"required|email|max:254"`
	Password             string `json:"password" validate:"required|min:8|confirmed"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// LoginInput is the credential payload for Login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthService struct {
	db        *gorm.DB
	users     *repositories.UserRepository
	customers *repositories.CustomerRepository
}

func NewAuthService(db *gorm.DB, users *repositories.UserRepository, customers *repositories.CustomerRepository) *AuthService {
	return &AuthService{db: db, users: users, customers: customers}
}

// Register creates a customer account and its profile in one transaction.
// Either both rows exist afterwards or neither does.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return nil, NewValidationError(errs)
	}

	if taken, err := s.users.UsernameExists(input.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, NewValidationError(map[string]string{"username": "The username is already taken."})
	}
	if taken, err := s.users.EmailExists(input.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, NewValidationError(map[string]string{"email": "The email is already registered."})
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Role:     models.RoleCustomer,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(user); err != nil {
			return err
		}
		return s.provision(tx, user)
	})
	if err != nil {
		return nil, err
	}

	notification.SendAsync(user.Email, &welcomeNotification{username: user.Username})

	logger.Info("auth: registered customer", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// provision creates the customer profile for a fresh account, copying the
// account's username and email. It refuses to run when the customer role
// group has not been seeded, so a misconfigured install fails loudly
// instead of producing accounts without profiles.
func (s *AuthService) provision(tx *gorm.DB, user *models.User) error {
	if _, err := s.users.WithTx(tx).FindRoleGroup(string(models.RoleCustomer)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProvisioning
		}
		return err
	}

	customer := &models.Customer{
		UserID: &user.ID,
		Name:   user.Username,
		Email:  user.Email,
	}
	if err := s.customers.WithTx(tx).Create(customer); err != nil {
		return ErrProvisioning
	}
	return nil
}

// Login verifies credentials and returns the user plus a signed token.
// Lookup failures and bad passwords are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return nil, "", NewValidationError(errs)
	}

	user, err := s.users.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// LandingRoute maps a role to the route name the user should land on
// after login.
func LandingRoute(role models.Role) string {
	if role == models.RoleAdmin {
		return "dashboard"
	}
	return "portal"
}

// welcomeNotification is mailed to new customers after registration.
type welcomeNotification struct {
	username string
}

func (n *welcomeNotification) Via() []string { return []string{"mail"} }

func (n *welcomeNotification) ToMail() notification.MailData {
	return notification.MailData{
		Subject: "Welcome to OrderDesk",
		Body:    "Hi " + n.username + ",<br><br>Your customer account is ready. Sign in to view your orders.",
	}
}
