package services

import (
	"fmt"

	"github.com/commplan-simple/models"
	"github.com/commplan-simple/utils"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExcelExportService renders a project aggregate into a multi-sheet workbook.
// Rendering is purely presentational and happens fully in memory.
type ExcelExportService struct {
	logger *zap.Logger
}

// NewExcelExportService creates a new Excel export service instance
func NewExcelExportService(logger *zap.Logger) *ExcelExportService {
	return &ExcelExportService{logger: logger}
}

// Render produces the xlsx workbook for a fully hydrated project
func (s *ExcelExportService) Render(project models.Project) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	const projectSheet = "Project"
	if err := f.SetSheetName("Sheet1", projectSheet); err != nil {
		return nil, err
	}

	projectRows := [][2]string{
		{"Project name", project.Name},
		{"Description", utils.OrNotSpecified(project.Description)},
		{"Created", project.CreatedAt.Format("02.01.2006")},
		{"Last updated", project.UpdatedAt.Format("02.01.2006")},
	}
	if project.Goals != "" {
		projectRows = append(projectRows, [2]string{"Project goals", project.Goals})
	}
	for i, row := range projectRows {
		f.SetCellValue(projectSheet, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(projectSheet, fmt.Sprintf("B%d", i+1), row[1])
	}
	f.SetColWidth(projectSheet, "A", "A", 20)
	f.SetColWidth(projectSheet, "B", "B", 50)

	// Stakeholder sheet, only when the project has stakeholders
	if len(project.Stakeholders) > 0 {
		const sheet = "Stakeholders"
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		headers := []string{"Name", "Role", "Department", "Contact", "Information needs", "Preferred channels"}
		if err := s.writeHeaderRow(f, sheet, headers, headerStyle); err != nil {
			return nil, err
		}
		for i, stakeholder := range project.Stakeholders {
			row := i + 2
			s.writeRow(f, sheet, row, []string{
				stakeholder.Name,
				utils.OrNotSpecified(stakeholder.Role),
				utils.OrNotSpecified(stakeholder.Department),
				utils.OrNotSpecified(stakeholder.ContactInfo),
				utils.JoinOrNotSpecified(stakeholder.InformationNeeds),
				utils.JoinOrNotSpecified(stakeholder.PreferredChannels),
			})
		}
		f.SetColWidth(sheet, "A", "F", 20)
	}

	// Matrix sheet, only when the plan has entries
	if plan := project.CommunicationPlan; plan != nil && len(plan.Matrix) > 0 {
		const sheet = "Communication Matrix"
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		headers := []string{"Sender", "Receiver", "Content", "Frequency", "Timing", "Channel", "Format", "Purpose", "Priority"}
		if err := s.writeHeaderRow(f, sheet, headers, headerStyle); err != nil {
			return nil, err
		}
		for i, entry := range plan.Matrix {
			row := i + 2
			s.writeRow(f, sheet, row, []string{
				utils.OrNotSpecified(entry.WhoSender),
				utils.OrNotSpecified(entry.WhoReceiver),
				utils.OrNotSpecified(entry.WhatContent),
				utils.OrNotSpecified(entry.WhenFrequency),
				utils.OrNotSpecified(entry.WhenTiming),
				utils.OrNotSpecified(entry.HowChannel),
				utils.OrNotSpecified(entry.HowFormat),
				utils.OrNotSpecified(entry.WhyPurpose),
				utils.OrNotSpecified(entry.Priority),
			})
		}
		f.SetColWidth(sheet, "A", "I", 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("Failed to render workbook", zap.String("project_id", project.ID), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExcelExportService) writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	end, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", end, style)
}

func (s *ExcelExportService) writeRow(f *excelize.File, sheet string, row int, values []string) {
	for i, value := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, value)
	}
}
