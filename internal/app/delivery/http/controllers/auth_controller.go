package controllers

import (
	"net/http"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/delivery/http/middlewares"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(models.LoginRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeLoginRequest(request)
	request.Email = utils.NormalizeEmail(request.Email)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	err := ctrl.AuthUsecase.Logout(r.Context(), middlewares.AccessTokenFromContext(r.Context()))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, utils.MessageResponse{Message: constvars.LogoutSuccessMessage})
}
