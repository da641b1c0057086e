package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/auth"
	"github.com/shashiranjanraj/orderdesk/pkg/testkit"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db,
		repositories.NewUserRepository(db),
		repositories.NewCustomerRepository(db))
}

func validRegister() RegisterInput {
	return RegisterInput{
		Username:             "jane_doe",
		Email:                "jane@example.com",
		Password:             "secret-pass",
		PasswordConfirmation: "secret-pass",
	}
}

func TestRegisterProvisionsCustomerProfile(t *testing.T) {
	db := testkit.DB(t)
	svc := newAuthService(db)

	user, err := svc.Register(validRegister())
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)

	// password is stored hashed, never plaintext
	assert.NotEqual(t, "secret-pass", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "secret-pass"))

	// exactly one profile, linked to the account with copied identity
	var customers []models.Customer
	require.NoError(t, db.Find(&customers).Error)
	require.Len(t, customers, 1)
	require.NotNil(t, customers[0].UserID)
	assert.Equal(t, user.ID, *customers[0].UserID)
	assert.Equal(t, "jane_doe", customers[0].Name)
	assert.Equal(t, "jane@example.com", customers[0].Email)
}

func TestRegisterPasswordMismatchCreatesNothing(t *testing.T) {
	db := testkit.DB(t)
	svc := newAuthService(db)

	input := validRegister()
	input.PasswordConfirmation = "different"

	_, err := svc.Register(input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "password")

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Zero(t, users)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testkit.DB(t)
	svc := newAuthService(db)

	_, err := svc.Register(validRegister())
	require.NoError(t, err)

	input := validRegister()
	input.Email = "other@example.com"
	_, err = svc.Register(input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testkit.DB(t)
	svc := newAuthService(db)

	_, err := svc.Register(validRegister())
	require.NoError(t, err)

	input := validRegister()
	input.Username = "other_user"
	_, err = svc.Register(input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
}

func TestRegisterWithoutCustomerGroupRollsBack(t *testing.T) {
	db := testkit.DB(t)
	require.NoError(t, db.Where("name = ?", string(models.RoleCustomer)).Delete(&models.RoleGroup{}).Error)

	svc := newAuthService(db)
	_, err := svc.Register(validRegister())
	require.ErrorIs(t, err, ErrProvisioning)

	// the whole registration rolled back, no half-created account
	var users, customers int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Customer{}).Count(&customers)
	assert.Zero(t, users)
	assert.Zero(t, customers)
}

func TestLogin(t *testing.T) {
	db := testkit.DB(t)
	svc := newAuthService(db)

	_, err := svc.Register(validRegister())
	require.NoError(t, err)

	user, token, err := svc.Login(LoginInput{Username: "jane_doe", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "jane_doe", user.Username)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(models.RoleCustomer), claims.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	db := testkit.DB(t)
	svc := newAuthService(db)

	_, err := svc.Register(validRegister())
	require.NoError(t, err)

	// wrong password and unknown user look the same to the caller
	_, _, err = svc.Login(LoginInput{Username: "jane_doe", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(LoginInput{Username: "nobody", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLandingRoute(t *testing.T) {
	assert.Equal(t, "dashboard", LandingRoute(models.RoleAdmin))
	assert.Equal(t, "portal", LandingRoute(models.RoleCustomer))
}
