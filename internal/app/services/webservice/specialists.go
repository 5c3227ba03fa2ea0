package webservice

import (
	"context"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/utils"

	"go.uber.org/zap"
)

func (c *webService) ListSpecialists(ctx context.Context) ([]models.Specialist, error) {
	ctx, requestID := utils.ContextWithRequestID(ctx)
	c.Log.Info("webService.ListSpecialists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var specialists []models.Specialist
	err := c.send(ctx, apiRequest{
		Operation: "webService.ListSpecialists",
		Method:    constvars.MethodGet,
		Path:      constvars.EndpointSpecialist,
		Resource:  constvars.ResourceSpecialist,
	}, &specialists)
	if err != nil {
		return nil, err
	}
	if specialists == nil {
		specialists = make([]models.Specialist, 0)
	}

	c.Log.Info("webService.ListSpecialists succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecialistCountKey, len(specialists)),
	)
	return specialists, nil
}
