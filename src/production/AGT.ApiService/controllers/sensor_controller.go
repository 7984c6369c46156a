package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logger "gitlab.com/unnchai/agro.backend/src/production/AGT.Logger"
	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
	api_models "gitlab.com/unnchai/agro.backend/src/production/AGT.Models/api"
	interfaces "gitlab.com/unnchai/agro.backend/src/production/AGT.Repository/Interfaces"
)

// SensorController handles sensor record requests
type SensorController struct {
	recordRepo interfaces.RecordRepository
	predictor  interfaces.Predictor
	logger     *logger.Logger
}

// NewSensorController creates a new sensor controller
func NewSensorController(recordRepo interfaces.RecordRepository, predictor interfaces.Predictor, logger *logger.Logger) *SensorController {
	return &SensorController{
		recordRepo: recordRepo,
		predictor:  predictor,
		logger:     logger,
	}
}

// RegisterRoutes registers the sensor routes with Gin
func (c *SensorController) RegisterRoutes(router *gin.Engine) {
	router.POST("/save_data", c.SaveData)
	router.GET("/get_all_data", c.GetAllData)
	router.GET("/get_current_data", c.GetCurrentData)
}

// SaveData stores one reading with a server-assigned timestamp and a derived
// flammability prediction. Every failure collapses to 500 {"status":"failed"}
// and persists nothing.
func (c *SensorController) SaveData(ctx *gin.Context) {
	var req api_models.SaveDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.ErrorWithError(err, "Invalid save_data payload")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}

	prediction, err := c.predictor.PredictFlammability(*req.Data)
	if err != nil {
		c.logger.WithField("device_id", req.DeviceID).ErrorWithError(err, "Flammability prediction failed")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}

	record := agtmodels.SensorRecord{
		DeviceID:   req.DeviceID,
		Timestamp:  time.Now().UTC(),
		Data:       *req.Data,
		Prediction: prediction,
	}

	if err := c.recordRepo.InsertOne(ctx, record); err != nil {
		c.logger.WithField("device_id", req.DeviceID).ErrorWithError(err, "Failed to store sensor record")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}

	ctx.JSON(http.StatusOK, api_models.StatusSuccess)
}

// GetAllData returns every stored record, newest first. No pagination.
func (c *SensorController) GetAllData(ctx *gin.Context) {
	records, err := c.recordRepo.FindAll(ctx)
	if err != nil {
		c.logger.ErrorWithError(err, "Failed to read sensor records")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// GetCurrentData returns the single most recent record as an object. An empty
// collection yields 404 rather than 500 so pollers can tell "no readings yet"
// apart from a database outage.
func (c *SensorController) GetCurrentData(ctx *gin.Context) {
	record, err := c.recordRepo.FindLatest(ctx)
	if err != nil {
		c.logger.ErrorWithError(err, "Failed to read latest sensor record")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}
	if record == nil {
		ctx.JSON(http.StatusNotFound, api_models.StatusFailed)
		return
	}

	ctx.JSON(http.StatusOK, record)
}
