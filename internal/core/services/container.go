package services

import (
	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	portsrepo "github.com/danielsvicente/my-finance-api/internal/core/ports/repositories"
	portssvc "github.com/danielsvicente/my-finance-api/internal/core/ports/services"
)

// NewServiceContainer wires all application services over the repository
// provider. The account service depends on the net-worth service: every
// account mutation triggers a total refresh.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, baseCurrency domain.Currency, ratePair string) *portssvc.ServiceContainer {
	netWorth := NewNetWorthService(repos.AccountRepo, repos.TotalHistoryRepo, repos.RateSource, baseCurrency, ratePair)

	return &portssvc.ServiceContainer{
		Account:  NewAccountService(repos.AccountRepo, repos.AccountHistoryRepo, netWorth),
		History:  NewHistoryService(repos.AccountRepo, repos.AccountHistoryRepo, repos.NoteRepo),
		NetWorth: netWorth,
	}
}
