package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
	"github.com/shashiranjanraj/orderdesk/pkg/session"
)

type DashboardController struct {
	orders *services.OrderService
}

func NewDashboardController(orders *services.OrderService) *DashboardController {
	return &DashboardController{orders: orders}
}

// Show renders the admin landing page summary: order counts per status
// plus the customer count.
func (c *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	summary, err := c.orders.Dashboard()
	if err != nil {
		serviceError(w, r, err)
		return
	}

	sess := session.FromCtx(r)
	messages := sess.PullFlashes()
	_ = sess.Save(w)

	response.Success(w, map[string]interface{}{
		"summary":  summary,
		"messages": messages,
	})
}
