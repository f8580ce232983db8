package mapping

import (
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/danielsvicente/my-finance-api/internal/models"
)

// ToModelAccountHistory converts a domain snapshot into its row shape.
func ToModelAccountHistory(d domain.AccountHistory) models.AccountHistory {
	return models.AccountHistory{
		HistoryID:    d.HistoryID,
		AccountID:    d.AccountID,
		Balance:      d.Balance,
		Variation:    d.Variation,
		SnapshotDate: d.Date,
	}
}

// ToDomainAccountHistory converts an account_history row into its domain shape.
func ToDomainAccountHistory(m models.AccountHistory) domain.AccountHistory {
	return domain.AccountHistory{
		HistoryID: m.HistoryID,
		AccountID: m.AccountID,
		SnapshotValues: domain.SnapshotValues{
			Balance:   m.Balance,
			Variation: m.Variation,
			Date:      m.SnapshotDate,
		},
	}
}

// ToModelTotalHistory converts a domain total snapshot into its row shape.
func ToModelTotalHistory(d domain.TotalHistory) models.TotalHistory {
	return models.TotalHistory{
		TotalID:      d.TotalID,
		Balance:      d.Balance,
		Invested:     d.Invested,
		Uninvested:   d.Uninvested,
		Variation:    d.Variation,
		EurBrlRate:   d.EurBrlRate,
		SnapshotDate: d.Date,
	}
}

// ToDomainTotalHistory converts a total_history row into its domain shape.
func ToDomainTotalHistory(m models.TotalHistory) domain.TotalHistory {
	return domain.TotalHistory{
		TotalID:    m.TotalID,
		Invested:   m.Invested,
		Uninvested: m.Uninvested,
		EurBrlRate: m.EurBrlRate,
		SnapshotValues: domain.SnapshotValues{
			Balance:   m.Balance,
			Variation: m.Variation,
			Date:      m.SnapshotDate,
		},
	}
}

// ToModelNote converts a domain.Note into its row shape.
func ToModelNote(d domain.Note) models.Note {
	return models.Note{
		NoteID:    d.NoteID,
		HistoryID: d.HistoryID,
		Note:      d.Text,
		NoteDate:  d.Date,
	}
}

// ToDomainNote converts a note row into its domain shape.
func ToDomainNote(m models.Note) domain.Note {
	return domain.Note{
		NoteID:    m.NoteID,
		HistoryID: m.HistoryID,
		Text:      m.Note,
		Date:      m.NoteDate,
	}
}
