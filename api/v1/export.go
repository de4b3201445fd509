package v1

import (
	"net/http"

	"github.com/commplan-simple/services"
	"github.com/commplan-simple/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController handles document export endpoints
type ExportController struct {
	projectService *services.ProjectService
	pdfService     *services.PDFExportService
	excelService   *services.ExcelExportService
}

// NewExportController creates a new export controller
func NewExportController(db *gorm.DB, logger *zap.Logger) *ExportController {
	return &ExportController{
		projectService: services.NewProjectService(db, logger),
		pdfService:     services.NewPDFExportService(logger),
		excelService:   services.NewExcelExportService(logger),
	}
}

// RegisterRoutes registers export routes
func (ctl *ExportController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("/:id/export/pdf", ctl.ExportPDF)
		projects.GET("/:id/export/excel", ctl.ExportExcel)
	}
}

// ExportPDF streams the project's communication plan as a PDF document
func (ctl *ExportController) ExportPDF(c *gin.Context) {
	project, err := ctl.projectService.GetCompleteProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	document, err := ctl.pdfService.Render(project)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := utils.ExportFilename(project.Name, "pdf")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", document)
}

// ExportExcel streams the project's communication plan as an xlsx workbook
func (ctl *ExportController) ExportExcel(c *gin.Context) {
	project, err := ctl.projectService.GetCompleteProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	workbook, err := ctl.excelService.Render(project)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := utils.ExportFilename(project.Name, "xlsx")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxMIME, workbook)
}
