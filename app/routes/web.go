// Package routes wires every controller onto named routes behind the
// appropriate gate chain.
package routes

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/orderdesk/app/controllers"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/gate"
	"github.com/shashiranjanraj/orderdesk/pkg/metrics"
	"github.com/shashiranjanraj/orderdesk/pkg/middleware"
	"github.com/shashiranjanraj/orderdesk/pkg/reqid"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
	"github.com/shashiranjanraj/orderdesk/pkg/session"
)

// Deps carries everything Register needs to build the handler tree.
type Deps struct {
	Auth  *services.AuthService
	Order *services.OrderService
	Cust  *services.CustomerService
	Prod  *services.ProductService
}

// guestLandings maps a role to where an already-signed-in visitor lands
// when they hit the login or register page.
var guestLandings = map[string]string{
	"admin":    "dashboard",
	"customer": "portal",
}

// Register mounts middleware, gates and routes, then returns the router.
func Register(deps Deps) *router.Router {
	rt := router.New()

	rt.Use(
		reqid.Middleware(),
		metrics.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		session.Middleware(session.DefaultOptions()),
		middleware.Identify,
	)

	authCtl := controllers.NewAuthController(deps.Auth, rt)
	dashCtl := controllers.NewDashboardController(deps.Order)
	prodCtl := controllers.NewProductController(deps.Prod)
	custCtl := controllers.NewCustomerController(deps.Cust)
	orderCtl := controllers.NewOrderController(deps.Order, rt)
	acctCtl := controllers.NewAccountController(deps.Cust, rt)

	guestOnly := gate.Middleware(rt, gate.GuestOnly(guestLandings, "portal"))
	loginRate := middleware.RateLimit(10, time.Minute)

	// Guest pages. Signed-in visitors bounce to their landing page.
	rt.Post("/login", "login", authCtl.Login, guestOnly, loginRate)
	rt.Post("/register", "register", authCtl.Register, guestOnly, loginRate)

	rt.Post("/logout", "logout", authCtl.Logout,
		gate.Middleware(rt, gate.RequireAuth("login")))

	// Home splits by role: admins proceed to the dashboard, customers are
	// sent to their portal, anyone else is refused.
	rt.Get("/", "home", dashCtl.Show,
		gate.Middleware(rt,
			gate.RequireAuth("login"),
			gate.Split("admin", "customer", "portal")))

	// Admin pages.
	admin := gate.Middleware(rt,
		gate.RequireAuth("login"),
		gate.Allow("admin"))

	rt.Get("/dashboard", "dashboard", dashCtl.Show, admin)
	rt.Get("/products", "products", prodCtl.Index, admin)
	rt.Get("/products/{id}", "products.show", prodCtl.Show, admin)
	rt.Get("/customers/{id}", "customers.show", custCtl.Show, admin)
	rt.Post("/customers/{id}/orders", "orders.create", orderCtl.Store, admin)
	rt.Get("/orders/{id}/edit", "orders.edit", orderCtl.Edit, admin)
	rt.Post("/orders/{id}", "orders.update", orderCtl.Update, admin)
	rt.Get("/orders/{id}/delete", "orders.confirm-delete", orderCtl.ConfirmDelete, admin)
	rt.Post("/orders/{id}/delete", "orders.delete", orderCtl.Delete, admin)

	// Customer pages.
	customer := gate.Middleware(rt,
		gate.RequireAuth("login"),
		gate.Allow("customer"))

	rt.Get("/portal", "portal", acctCtl.Portal, customer)
	rt.Post("/account", "account.update", acctCtl.UpdateProfile, customer)

	rt.Handle(http.MethodGet, "/metrics", "metrics", metrics.Handler())

	return rt
}
