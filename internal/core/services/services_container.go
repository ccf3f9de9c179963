package services

import (
	portsrepo "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/repositories"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
)

// NewServiceContainer wires every application service from the repository
// provider. The fiscal entry service sits on top of the account, product,
// calculator and generator services, so construction order matters.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	productSvc := NewProductService(repos.ProductRepo)
	calculator := NewTaxCascadeService()
	generator := NewEntryGeneratorService()

	journalSvc := NewJournalEntryService(repos.JournalRepo, accountSvc)
	fiscalSvc := NewFiscalEntryService(repos.JournalRepo, accountSvc, productSvc, calculator, generator)

	return &portssvc.ServiceContainer{
		Account:       accountSvc,
		JournalEntry:  journalSvc,
		FiscalEntry:   fiscalSvc,
		Product:       productSvc,
		TaxCalculator: calculator,
	}
}
