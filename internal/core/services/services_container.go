package services

import (
	"github.com/clarity-finance/clarity-backend/internal/core/domain"
	portsprov "github.com/clarity-finance/clarity-backend/internal/core/ports/providers"
	portsrepo "github.com/clarity-finance/clarity-backend/internal/core/ports/repositories"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	banking portsprov.BankingProvider,
	demoTransactions []domain.Transaction,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		BankLink:    NewBankLinkService(banking, repos.TransactionRepo),
		Reporting:   NewReportingService(repos.TransactionRepo),
		Demo:        NewDemoService(demoTransactions),
	}
}
