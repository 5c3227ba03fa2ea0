package webservice

import (
	"context"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"go.uber.org/zap"
)

func (c *webService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	ctx, requestID := utils.ContextWithRequestID(ctx)
	c.Log.Info("webService.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	credentials := &models.LoginRequest{Email: email, Password: password}
	utils.SanitizeLoginRequest(credentials)
	if err := utils.ValidateStruct(credentials); err != nil {
		c.Log.Error("webService.Login invalid credentials format",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	response := new(models.LoginResponse)
	err := c.send(ctx, apiRequest{
		Operation:      "webService.Login",
		Method:         constvars.MethodPost,
		Path:           constvars.EndpointAuthLogin,
		Resource:       constvars.ResourceAuth,
		Body:           credentials,
		ExpectedStatus: constvars.StatusOK,
	}, response)
	if err != nil {
		return nil, err
	}

	if response.Token == "" {
		c.Log.Warn("webService.Login succeeded without a token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, response.PatientID),
		)
	} else {
		c.Session.SetToken(response.Token)
	}

	c.Log.Info("webService.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.PatientID),
	)
	return response, nil
}

func (c *webService) Logout(ctx context.Context) error {
	ctx, requestID := utils.ContextWithRequestID(ctx)
	c.Log.Info("webService.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := c.send(ctx, apiRequest{
		Operation:      "webService.Logout",
		Method:         constvars.MethodPost,
		Path:           constvars.EndpointAuthLogout,
		Resource:       constvars.ResourceAuth,
		ContentType:    true,
		AuthRequired:   true,
		ExpectedStatus: constvars.StatusOK,
	}, nil)
	if err != nil {
		return err
	}

	c.Session.Clear()
	c.Log.Info("webService.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
