package handlers

import (
	"github.com/fatflowers/coursehub/internal/app/service/statistics"
	"github.com/fatflowers/coursehub/internal/app/service/subscription"
	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/pkg/response"
)

// RespOK is a generic envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

type RespMessage struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    MessageResponse          `json:"data"`
}

type RespAuth struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    AuthResponse             `json:"data"`
}

type RespAccount struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Account           `json:"data"`
}

type RespUsers struct {
	Code    response.APIResponseCode         `json:"code"`
	Message string                           `json:"message"`
	Data    store.ListResult[models.Account] `json:"data"`
}

type RespCourses struct {
	Code    response.APIResponseCode        `json:"code"`
	Message string                          `json:"message"`
	Data    store.ListResult[models.Course] `json:"data"`
}

type RespLectures struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    LecturesResponse         `json:"data"`
}

type RespDashboard struct {
	Code    response.APIResponseCode  `json:"code"`
	Message string                    `json:"message"`
	Data    statistics.DashboardStats `json:"data"`
}

type RespCreateSubscription struct {
	Code    response.APIResponseCode   `json:"code"`
	Message string                     `json:"message"`
	Data    CreateSubscriptionResponse `json:"data"`
}

type RespGatewayKey struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    GatewayKeyResponse       `json:"data"`
}

type RespCancel struct {
	Code    response.APIResponseCode  `json:"code"`
	Message string                    `json:"message"`
	Data    subscription.CancelResult `json:"data"`
}
