package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/bind"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
	"github.com/shashiranjanraj/orderdesk/pkg/session"
)

type OrderController struct {
	orders *services.OrderService
	router *router.Router
}

func NewOrderController(orders *services.OrderService, rt *router.Router) *OrderController {
	return &OrderController{orders: orders, router: rt}
}

type batchOrderInput struct {
	Orders []services.OrderLine `json:"orders"`
}

// parseOrderLines reads the batch payload. JSON clients send an "orders"
// array; the browser form sends parallel product_id[], status[] and note[]
// fields.
func parseOrderLines(r *http.Request) ([]services.OrderLine, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var input batchOrderInput
		if _, err := bind.JSON(r, &input); err != nil {
			return nil, err
		}
		return input.Orders, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	formValues := func(name string) []string {
		if vs := r.PostForm[name+"[]"]; len(vs) > 0 {
			return vs
		}
		return r.PostForm[name]
	}

	ids := formValues("product_id")
	statuses := formValues("status")
	notes := formValues("note")

	lines := make([]services.OrderLine, 0, len(ids))
	for i, raw := range ids {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad product id %q", raw)
		}
		line := services.OrderLine{ProductID: uint(id)}
		if i < len(statuses) {
			line.Status = statuses[i]
		}
		if i < len(notes) {
			line.Note = notes[i]
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Store creates a batch of orders for the customer in the URL. All lines
// commit together or not at all.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	customerID, err := urlParamUint(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	lines, err := parseOrderLines(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	created, err := c.orders.CreateOrders(customerID, lines)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	if wantsJSON(r) {
		response.Created(w, created)
		return
	}
	flashAndRedirect(w, r, c.router, session.FlashSuccess,
		fmt.Sprintf("Successfully created %d order(s)!", len(created)), "dashboard", nil)
}

// Edit returns the order being edited plus the accepted status values.
func (c *OrderController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUint(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	order, err := c.orders.Get(id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"order":    order,
		"statuses": models.OrderStatuses,
	})
}

// Update edits an order's customer, product, status and note, then sends
// the admin back to that customer's page.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUint(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	var input services.UpdateOrderInput
	if !bindInput(w, r, &input) {
		return
	}

	order, err := c.orders.Update(id, input)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	if wantsJSON(r) {
		response.Success(w, order)
		return
	}
	flashAndRedirect(w, r, c.router, session.FlashInfo,
		fmt.Sprintf("Order updated to [%s]", order.ProductName()),
		"customers.show", customerParams(order))
}

// customerParams builds the route params for the customer page owning the
// order. An orphaned order has no customer to point at; URL resolution then
// fails and the redirect helper falls back to home.
func customerParams(order *models.Order) map[string]string {
	if order.CustomerID == nil {
		return nil
	}
	return map[string]string{"id": strconv.FormatUint(uint64(*order.CustomerID), 10)}
}

// ConfirmDelete is the first phase of deletion: it shows the order so the
// admin can confirm. Nothing is removed here.
func (c *OrderController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUint(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	order, err := c.orders.Get(id)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, order)
}

// Delete is the confirmed second phase. It removes the order and reports
// which product's order went away.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUint(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	order, err := c.orders.Delete(id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	if wantsJSON(r) {
		response.Success(w, order)
		return
	}
	flashAndRedirect(w, r, c.router, session.FlashInfo,
		fmt.Sprintf("Order for [%s] deleted.", order.ProductLabel()), "dashboard", nil)
}
