package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiselev-pavel-dev/menu-cafe/services"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
)

type ExportController struct {
	Service *services.ExportService
}

func NewExportController(service *services.ExportService) *ExportController {
	return &ExportController{Service: service}
}

// CreateMenuFile queues a spreadsheet of the whole catalogue.
func (ec *ExportController) CreateMenuFile(c *gin.Context) {
	job, err := ec.Service.Enqueue(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, job)
}

// GetMenuFile serves the finished spreadsheet, or the job state while it
// is still running.
func (ec *ExportController) GetMenuFile(c *gin.Context) {
	job, err := ec.Service.Result(c.Param("job_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	switch job.Status {
	case services.StatusSuccess:
		c.FileAttachment(job.Path, job.ID+".xlsx")
	case services.StatusFailure:
		utils.RespondJSON(c, http.StatusInternalServerError, job)
	default:
		utils.RespondJSON(c, http.StatusAccepted, job)
	}
}
