package controllers

import (
	"net/http"
	"strings"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/services/imagecache"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type SpecialistController struct {
	Log               *zap.Logger
	SpecialistUsecase contracts.SpecialistUsecase
}

func NewSpecialistController(logger *zap.Logger, specialistUsecase contracts.SpecialistUsecase) *SpecialistController {
	return &SpecialistController{
		Log:               logger,
		SpecialistUsecase: specialistUsecase,
	}
}

func (ctrl *SpecialistController) ListSpecialists(w http.ResponseWriter, r *http.Request) {
	specialists, err := ctrl.SpecialistUsecase.ListSpecialists(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, specialists)
}

// Image serves the avatar behind a specialist's imagem URL.
func (ctrl *SpecialistController) Image(w http.ResponseWriter, r *http.Request) {
	specialistID := strings.TrimSuffix(urlParam(r, constvars.URLParamFile), ".png")

	_, err := ctrl.SpecialistUsecase.FindSpecialist(r.Context(), specialistID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEImagePNG)
	w.WriteHeader(constvars.StatusOK)
	w.Write(imagecache.PlaceholderPNG())
}
