package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/gate"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
	"github.com/shashiranjanraj/orderdesk/pkg/session"
)

const maxPictureBytes = 5 << 20

// AccountController serves the signed-in customer's own portal. Every
// lookup goes through the caller's user id, never an id from the request.
type AccountController struct {
	customers *services.CustomerService
	router    *router.Router
}

func NewAccountController(customers *services.CustomerService, rt *router.Router) *AccountController {
	return &AccountController{customers: customers, router: rt}
}

// Portal shows the caller's profile and order history, with the same
// filter options the admin pages have.
func (c *AccountController) Portal(w http.ResponseWriter, r *http.Request) {
	id := gate.FromCtx(r.Context())

	detail, err := c.customers.SelfView(id.UserID, filterFromQuery(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}

	sess := session.FromCtx(r)
	messages := sess.PullFlashes()
	_ = sess.Save(w)

	response.Success(w, map[string]interface{}{
		"customer":    detail.Customer,
		"orders":      detail.Orders,
		"order_count": detail.OrderCount,
		"totals":      detail.Totals,
		"messages":    messages,
	})
}

// UpdateProfile edits the caller's own profile. Accepts multipart form
// data so a new profile picture can come along.
func (c *AccountController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := gate.FromCtx(r.Context())

	input := services.UpdateProfileInput{}

	if wantsJSON(r) {
		if !bindInput(w, r, &input) {
			return
		}
	} else {
		if err := r.ParseMultipartForm(maxPictureBytes); err != nil {
			response.Error(w, http.StatusBadRequest, "Malformed request body.")
			return
		}
		input.Name = r.FormValue("name")
		input.Phone = r.FormValue("phone")
		input.Email = r.FormValue("email")

		if file, header, err := r.FormFile("profile_picture"); err == nil {
			defer file.Close()
			input.Picture = file
			input.PictureName = header.Filename
		}
	}

	customer, err := c.customers.UpdateProfile(id.UserID, input)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	if wantsJSON(r) {
		response.Success(w, customer)
		return
	}
	flashAndRedirect(w, r, c.router, session.FlashSuccess,
		"Profile updated.", "portal", nil)
}
