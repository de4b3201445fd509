package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/commplan-simple/models"
	"github.com/commplan-simple/utils"
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// PDFExportService renders a project aggregate into a printable report.
// Rendering is purely presentational and happens fully in memory.
type PDFExportService struct {
	logger *zap.Logger
}

// NewPDFExportService creates a new PDF export service instance
func NewPDFExportService(logger *zap.Logger) *PDFExportService {
	return &PDFExportService{logger: logger}
}

// Render produces the PDF document for a fully hydrated project
func (s *PDFExportService) Render(project models.Project) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 0, 139)
	pdf.MultiCell(0, 10, fmt.Sprintf("Communication Plan: %s", project.Name), "", "L", false)
	pdf.Ln(6)

	s.writeSectionTitle(pdf, "Project Information")
	rows := [][2]string{
		{"Project name", project.Name},
		{"Description", utils.OrNotSpecified(project.Description)},
		{"Created", project.CreatedAt.Format("02.01.2006")},
		{"Last updated", project.UpdatedAt.Format("02.01.2006")},
	}
	if project.Goals != "" {
		rows = append(rows, [2]string{"Project goals", project.Goals})
	}
	if project.Charter != "" {
		rows = append(rows, [2]string{"Project charter", project.Charter})
	}
	s.writeKeyValueTable(pdf, rows)

	// Stakeholder register, omitted entirely when the project has none
	if len(project.Stakeholders) > 0 {
		s.writeSectionTitle(pdf, "Stakeholder Register")
		s.writeTableHeader(pdf, []string{"Name", "Role", "Department", "Contact"}, 47.5)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for i, stakeholder := range project.Stakeholders {
			fill := i%2 == 1
			pdf.CellFormat(47.5, 7, stakeholder.Name, "1", 0, "L", fill, 0, "")
			pdf.CellFormat(47.5, 7, utils.OrNotSpecified(stakeholder.Role), "1", 0, "L", fill, 0, "")
			pdf.CellFormat(47.5, 7, utils.OrNotSpecified(stakeholder.Department), "1", 0, "L", fill, 0, "")
			pdf.CellFormat(47.5, 7, utils.OrNotSpecified(stakeholder.ContactInfo), "1", 1, "L", fill, 0, "")
		}
		pdf.Ln(6)
	}

	if plan := project.CommunicationPlan; plan != nil {
		planRows := [][2]string{}
		if plan.CommunicationObjectives != "" {
			planRows = append(planRows, [2]string{"Communication objectives", plan.CommunicationObjectives})
		}
		if plan.CommunicationStrategy != "" {
			planRows = append(planRows, [2]string{"Communication strategy", plan.CommunicationStrategy})
		}
		if plan.EscalationProcedures != "" {
			planRows = append(planRows, [2]string{"Escalation procedures", plan.EscalationProcedures})
		}
		if plan.CommunicationConstraints != "" {
			planRows = append(planRows, [2]string{"Communication constraints", plan.CommunicationConstraints})
		}
		if len(planRows) > 0 {
			s.writeSectionTitle(pdf, "Communication Plan Details")
			s.writeKeyValueTable(pdf, planRows)
		}

		if len(plan.Matrix) > 0 {
			s.writeSectionTitle(pdf, "Communication Matrix")
			s.writeTableHeader(pdf, []string{"Sender", "Receiver", "Content", "Frequency", "Channel"}, 38)
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(0, 0, 0)
			for i, entry := range plan.Matrix {
				fill := i%2 == 1
				pdf.CellFormat(38, 7, utils.OrNotSpecified(entry.WhoSender), "1", 0, "L", fill, 0, "")
				pdf.CellFormat(38, 7, utils.OrNotSpecified(entry.WhoReceiver), "1", 0, "L", fill, 0, "")
				pdf.CellFormat(38, 7, utils.OrNotSpecified(entry.WhatContent), "1", 0, "L", fill, 0, "")
				pdf.CellFormat(38, 7, utils.OrNotSpecified(entry.WhenFrequency), "1", 0, "L", fill, 0, "")
				pdf.CellFormat(38, 7, utils.OrNotSpecified(entry.HowChannel), "1", 1, "L", fill, 0, "")
			}
			pdf.Ln(6)
		}
	}

	// Footer
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated on %s with the communication plan generator",
		time.Now().Format("02.01.2006 15:04")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error("Failed to render PDF", zap.String("project_id", project.ID), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *PDFExportService) writeSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (s *PDFExportService) writeTableHeader(pdf *fpdf.Fpdf, headers []string, width float64) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		last := i == len(headers)-1
		ln := 0
		if last {
			ln = 1
		}
		pdf.CellFormat(width, 8, header, "1", ln, "C", true, 0, "")
	}
	pdf.SetFillColor(245, 245, 220)
}

func (s *PDFExportService) writeKeyValueTable(pdf *fpdf.Fpdf, rows [][2]string) {
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(211, 211, 211)
		pdf.CellFormat(55, 7, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(135, 7, row[1], "1", "L", false)
	}
	pdf.Ln(6)
}
