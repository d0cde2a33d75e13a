// File: goodjob/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Statistics endpoints
	SearchByCompanyHandler  gin.HandlerFunc
	SearchByJobTitleHandler gin.HandlerFunc

	// Listing endpoints
	ListWorkingsHandler   gin.HandlerFunc
	ExtremeWorkingHandler gin.HandlerFunc

	// Author endpoints
	UpdateWorkingStatusHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the workings handler into a bundle.
func NewHandlerBundle(wh *WorkingsHandler) *HandlerBundle {
	return &HandlerBundle{
		SearchByCompanyHandler:     wh.SearchByCompanyHandler,
		SearchByJobTitleHandler:    wh.SearchByJobTitleHandler,
		ListWorkingsHandler:        wh.ListHandler,
		ExtremeWorkingHandler:      wh.ExtremeHandler,
		UpdateWorkingStatusHandler: wh.UpdateStatusHandler,
		HealthHandler:              HealthHandler,
	}
}
