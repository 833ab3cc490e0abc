package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/bind"
	"github.com/shashiranjanraj/foodcourt/pkg/response"
)

// AuthController handles account registration and login.
type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

type registerInput struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/user/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	token, err := c.svc.Register(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.Token(w, token)
}

type loginInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/user/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Fail(w, bind.First(errs))
		return
	}

	token, err := c.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		fail(r.Context(), w, err)
		return
	}
	response.Token(w, token)
}
