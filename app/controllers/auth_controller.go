package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
	"github.com/shashiranjanraj/orderdesk/pkg/session"
)

type AuthController struct {
	auth   *services.AuthService
	router *router.Router
}

func NewAuthController(auth *services.AuthService, rt *router.Router) *AuthController {
	return &AuthController{auth: auth, router: rt}
}

// Register handles self-service signup. On success the new customer is
// signed in and sent to their portal.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if !bindInput(w, r, &input) {
		return
	}

	user, err := c.auth.Register(input)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	if wantsJSON(r) {
		response.Created(w, user)
		return
	}

	sess := session.FromCtx(r)
	sess.SetUser(user.ID, string(user.Role))
	flashAndRedirect(w, r, c.router, session.FlashSuccess,
		"Welcome! Your account is ready.", services.LandingRoute(user.Role), nil)
}

// Login verifies credentials. Browser clients get a session and a
// role-dependent redirect; API clients get a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if !bindInput(w, r, &input) {
		return
	}

	user, token, err := c.auth.Login(input)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	if wantsJSON(r) {
		response.Success(w, map[string]interface{}{
			"token": token,
			"user":  user,
		})
		return
	}

	sess := session.FromCtx(r)
	sess.SetUser(user.ID, string(user.Role))
	flashAndRedirect(w, r, c.router, session.FlashSuccess,
		"Signed in.", services.LandingRoute(user.Role), nil)
}

// Logout drops the session and returns to the login page.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Invalidate()
	_ = sess.Save(w)

	if wantsJSON(r) {
		response.Success(w, nil)
		return
	}
	redirectTo(w, r, c.router, "login", nil)
}
