package api_models

import (
	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
)

// SaveDataRequest is the body accepted by POST /save_data.
type SaveDataRequest struct {
	DeviceID string                `json:"device_id" binding:"required"`
	Data     *agtmodels.SensorData `json:"data" binding:"required"`
}

// ChatRequest is the body accepted by POST /chat. The _id is a free-form
// conversation label (IMEI in practice).
type ChatRequest struct {
	ID      string `json:"_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// StatusResponse is the uniform status envelope. Every failure, regardless of
// kind, collapses to {"status":"failed"}.
type StatusResponse struct {
	Status string `json:"status"`
}

var (
	StatusSuccess = StatusResponse{Status: "success"}
	StatusFailed  = StatusResponse{Status: "failed"}
)
