package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
)

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

// filterFromQuery reads the optional order filter out of the query string.
// Dates use YYYY-MM-DD; a bad date is ignored rather than rejected, the
// page just shows the unfiltered set for that bound.
func filterFromQuery(r *http.Request) services.OrderFilter {
	q := r.URL.Query()
	filter := services.OrderFilter{
		Status: q.Get("status"),
		Note:   q.Get("note"),
	}
	if raw := q.Get("from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.From = t
		}
	}
	if raw := q.Get("to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			// inclusive upper bound, end of day
			filter.To = t.Add(24*time.Hour - time.Second)
		}
	}
	return filter
}

// Show is the admin view of one customer: profile plus filtered order
// history.
func (c *CustomerController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUint(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	detail, err := c.customers.Detail(id, filterFromQuery(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, detail)
}
