package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ReportService builds the Excel progress sheet warehouse admins download
// for a MOF.
type ReportService interface {
	ProgressWorkbook(mofID uuid.UUID) (*excelize.File, error)
}

type reportService struct {
	progress ProgressService
}

func NewReportService(progress ProgressService) ReportService {
	return &reportService{progress: progress}
}

func (s *reportService) ProgressWorkbook(mofID uuid.UUID) (*excelize.File, error) {
	prog, err := s.progress.GetProgress(mofID)
	if err != nil {
		return nil, err
	}
	if prog == nil {
		return nil, ErrMofNotFound
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	// MOF summary block
	summary := [][]interface{}{
		{"MOF Serial", prog.Mof.SerialNumber},
		{"Part Number", prog.Mof.PartNumber},
		{"Status", string(prog.Mof.Status)},
		{"Quantity Requested", prog.QuantityRequested},
		{"Quantity Picked", prog.QuantityPicked},
		{"Quantity Verified", prog.QuantityVerified},
	}
	row := 1
	for _, line := range summary {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return nil, err
		}
		row++
	}

	// Item table
	row++
	header := []interface{}{
		"serial_number",
		"part_number",
		"supplier",
		"picked",
		"picked_at",
		"verified",
		"verified_at",
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &header); err != nil {
		return nil, err
	}
	row++

	for _, item := range prog.ItemsPicked {
		excelRow := []interface{}{
			item.SerialNumber,
			item.PartNumber,
			item.Supplier,
			item.PickedByPicker,
			formatTime(item.PickedAt),
			item.VerifiedByRequester,
			formatTime(item.VerifiedAt),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, err
		}
		row++
	}

	return f, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
