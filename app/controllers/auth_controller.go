package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/foodmart/app/services"
	"github.com/shashiranjanraj/foodmart/pkg/apperrors"
	"github.com/shashiranjanraj/foodmart/pkg/bind"
	"github.com/shashiranjanraj/foodmart/pkg/logger"
	"github.com/shashiranjanraj/foodmart/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type credentialsBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if err := bind.JSON(r, &body); err != nil {
		// An absent body means every field is missing.
		if errors.Is(err, bind.ErrEmptyBody) {
			response.Error(w, apperrors.Validation("Name, email, and password are required"))
			return
		}
		response.Error(w, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	token, user, err := c.service.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		c.fail(w, r, "register failed", err)
		return
	}

	response.OK(w, response.M{"token": token, "user": user})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if err := bind.JSON(r, &body); err != nil {
		if errors.Is(err, bind.ErrEmptyBody) {
			response.Error(w, apperrors.Validation("Request body is empty"))
			return
		}
		response.Error(w, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	token, user, err := c.service.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		c.fail(w, r, "login failed", err)
		return
	}

	response.OK(w, response.M{"token": token, "user": user})
}

// fail logs unexpected errors before the envelope hides them behind a 500.
func (c *AuthController) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if apperrors.From(err) == nil {
		logger.WithCtx(r.Context()).Error(msg, "error", err)
	}
	response.Error(w, err)
}
