package db

import (
	dbmodels "github.com/tradesite/directory/internal/directory/db/models"
	"github.com/tradesite/directory/internal/directory/models"
)

func subcontractorFromDomain(sub *models.Subcontractor) *dbmodels.Subcontractor {
	row := &dbmodels.Subcontractor{
		ID:                    sub.ID,
		Name:                  sub.Name,
		ABN:                   sub.ABN,
		Slug:                  sub.Slug,
		Mobile:                sub.Mobile,
		Email:                 sub.Email,
		Logo:                  sub.Logo,
		CurrentStep:           sub.CurrentStep,
		MainContactEmployeeID: sub.MainContactEmployeeID,
	}
	for _, doc := range sub.Documents {
		row.Documents = append(row.Documents, dbmodels.Document(doc))
	}
	for _, emp := range sub.Employees {
		row.Employees = append(row.Employees, dbmodels.Employee{
			ID:             emp.ID,
			Name:           emp.Name,
			JobTitle:       emp.JobTitle,
			Mobile:         emp.Mobile,
			Email:          emp.Email,
			ProfilePicture: emp.ProfilePicture,
		})
	}
	for _, trade := range sub.Trades {
		row.Trades = append(row.Trades, dbmodels.Trade{ID: trade.ID, Name: trade.Name})
	}
	return row
}

func subcontractorToDomain(row *dbmodels.Subcontractor) *models.Subcontractor {
	sub := &models.Subcontractor{
		ID:                    row.ID,
		Name:                  row.Name,
		ABN:                   row.ABN,
		Slug:                  row.Slug,
		Mobile:                row.Mobile,
		Email:                 row.Email,
		Logo:                  row.Logo,
		Documents:             make([]models.Document, 0, len(row.Documents)),
		CurrentStep:           row.CurrentStep,
		MainContactEmployeeID: row.MainContactEmployeeID,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
	for _, doc := range row.Documents {
		sub.Documents = append(sub.Documents, models.Document(doc))
	}
	for _, emp := range row.Employees {
		sub.Employees = append(sub.Employees, models.Employee{
			ID:              emp.ID,
			SubcontractorID: emp.SubcontractorID,
			Name:            emp.Name,
			JobTitle:        emp.JobTitle,
			Mobile:          emp.Mobile,
			Email:           emp.Email,
			ProfilePicture:  emp.ProfilePicture,
			CreatedAt:       emp.CreatedAt,
			UpdatedAt:       emp.UpdatedAt,
		})
	}
	for _, trade := range row.Trades {
		sub.Trades = append(sub.Trades, models.Trade{ID: trade.ID, Name: trade.Name})
	}
	return sub
}
