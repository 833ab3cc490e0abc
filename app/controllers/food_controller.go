package controllers

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/bind"
	"github.com/shashiranjanraj/foodcourt/pkg/response"
	"github.com/shashiranjanraj/foodcourt/pkg/validate"
)

// maxUploadMemory caps how much of a multipart form is buffered in memory
// before spilling to temp files.
const maxUploadMemory = 32 << 20 // 32 MB

// FoodController handles the dish catalog endpoints.
type FoodController struct {
	svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{svc: svc}
}

// List handles GET /api/food/list.
func (c *FoodController) List(w http.ResponseWriter, r *http.Request) {
	foods, err := c.svc.List(r.Context())
	if err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.Data(w, foods)
}

type addFoodInput struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required"`
}

// Add handles POST /api/food/add (multipart: name, description, price,
// category and an image file).
func (c *FoodController) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	in := addFoodInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
	}

	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		response.Fail(w, bind.First(errs))
		return
	}
	if !models.ValidCategory(in.Category) {
		response.Fail(w, "The selected category is invalid.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Fail(w, "Image is required")
		return
	}
	defer file.Close()

	filename, err := c.svc.SaveImage(header.Filename, file)
	if err != nil {
		fail(r.Context(), w, err)
		return
	}

	food := &models.Food{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       filename,
	}
	if err := c.svc.Add(r.Context(), food); err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.OK(w, "Food Added")
}

type removeFoodInput struct {
	ID string `json:"id" validate:"required"`
}

// Remove handles POST /api/food/remove.
func (c *FoodController) Remove(w http.ResponseWriter, r *http.Request) {
	var in removeFoodInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	if err := c.svc.Remove(r.Context(), in.ID); err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.OK(w, "Food Removed")
}
