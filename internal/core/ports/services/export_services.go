package services

import (
	"io"
	"time"

	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
)

// ExportSvcFacade builds the file-export view of the ledger. It is a
// read-only consumer of ledger state; rendering (PDF, tables) happens in the
// presentation layer from the same data.
type ExportSvcFacade interface {
	BuildExport(at time.Time) dto.ExportData
	WriteJSON(w io.Writer, at time.Time) error
	Filename(at time.Time) string
}
