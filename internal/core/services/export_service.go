package services

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	portssvc "github.com/Kuldeep2822k/meal_planner_app/internal/core/ports/services"
	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
)

// ExportService projects ledger state into the file-export shape. It reads
// through the ledger facade and never mutates anything.
type ExportService struct {
	ledger portssvc.LedgerSvcFacade
}

var _ portssvc.ExportSvcFacade = (*ExportService)(nil)

// NewExportService builds an exporter over the given ledger.
func NewExportService(ledger portssvc.LedgerSvcFacade) *ExportService {
	return &ExportService{ledger: ledger}
}

// BuildExport captures the dated export view: meals, totals and goals.
func (s *ExportService) BuildExport(at time.Time) dto.ExportData {
	snap := s.ledger.Snapshot()
	return dto.ExportData{
		Date:   at.Format("2006-01-02"),
		Meals:  snap.Meals,
		Totals: s.ledger.TotalNutrition(),
		Goals:  snap.Goals,
	}
}

// WriteJSON writes the export as indented JSON, the format the download
// button produces.
func (s *ExportService) WriteJSON(w io.Writer, at time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.BuildExport(at)); err != nil {
		return fmt.Errorf("failed to encode meal plan export: %w", err)
	}
	return nil
}

// Filename returns the suggested download name for an export taken at the
// given time.
func (s *ExportService) Filename(at time.Time) string {
	return fmt.Sprintf("meal-plan-%s.json", at.Format("2006-01-02"))
}
