package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// Index lists the whole catalog with tags.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.List()
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, products)
}

// Show returns one product.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamUint(r, "id")
	if err != nil {
		response.NotFound(w)
		return
	}

	product, err := c.products.Get(id)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, product)
}
