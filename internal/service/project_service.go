package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/hartley-interiors/studio-server/internal/storage"
	"github.com/hartley-interiors/studio-server/internal/storage/item"
	"github.com/hartley-interiors/studio-server/internal/storage/project"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
	"github.com/hartley-interiors/studio-server/internal/summary"
)

const defaultProjectLimit = 20

// ProjectService handles project business logic.
type ProjectService struct {
	storage *storage.Storage
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store *storage.Storage) *ProjectService {
	return &ProjectService{storage: store}
}

// CreateProject creates a new project and returns its ID.
func (s *ProjectService) CreateProject(ctx context.Context, p Project) (uuid.UUID, error) {
	storageCreate := &project.ProjectCreate{
		Name:             p.Name,
		ClientName:       p.ClientName,
		Budget:           p.Budget,
		DesignFee:        p.DesignFee,
		BudgetCategories: categoriesToStorage(p.BudgetCategories),
	}
	return s.storage.Projects.Insert(ctx, storageCreate)
}

// ProjectUpdate carries the mutable project fields, nil means unchanged.
type ProjectUpdate struct {
	Name             *string
	ClientName       *string
	Budget           *decimal.Decimal
	DesignFee        *decimal.Decimal
	BudgetCategories []CategoryAllocation
}

// UpdateProject applies the non-nil fields of update to a project.
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, update ProjectUpdate) error {
	storageUpdate := &project.ProjectUpdate{
		Name:       update.Name,
		ClientName: update.ClientName,
		Budget:     update.Budget,
		DesignFee:  update.DesignFee,
	}
	if update.BudgetCategories != nil {
		storageUpdate.BudgetCategories = categoriesToStorage(update.BudgetCategories)
	}
	return s.storage.Projects.Update(ctx, id, storageUpdate)
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*Project, error) {
	row, err := s.storage.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := storageProjectToProject(row)
	return &converted, nil
}

// ListProjects returns all projects ordered by name.
func (s *ProjectService) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.storage.Projects.List(ctx, &project.ProjectFilter{Limit: defaultProjectLimit * 50})
	if err != nil {
		return nil, err
	}
	converted := make([]Project, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, storageProjectToProject(row))
	}
	return converted, nil
}

// DeleteProject removes a project.
func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.storage.Projects.Delete(ctx, id)
}

// ClientSummary fetches a project's items and transactions and computes the
// client-facing financial rollup. Recomputed on every call, nothing cached.
func (s *ProjectService) ClientSummary(ctx context.Context, projectID uuid.UUID) (*summary.Summary, error) {
	proj, err := s.storage.Projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items, err := s.storage.Items.List(ctx, &item.ItemFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}

	transactions, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[string]string, len(proj.BudgetCategories))
	for _, category := range proj.BudgetCategories {
		categoryNames[category.ID.String()] = category.Name
	}

	computed := summary.Compute(
		itemsToSummary(items),
		transactionsToSummary(transactions),
		categoryNames,
	)
	return &computed, nil
}

// ReceiptLink resolves the proof-of-purchase link for an item against the
// project's loaded transactions.
func (s *ProjectService) ReceiptLink(ctx context.Context, projectID, itemID uuid.UUID) (*summary.ReceiptLink, error) {
	row, err := s.storage.Items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}

	return summary.ResolveReceiptLink(itemToSummary(row), transactionsToSummary(transactions)), nil
}

// Invoice builds the project invoice view: billing transactions with the net
// owed in each direction.
func (s *ProjectService) Invoice(ctx context.Context, projectID uuid.UUID) (*ProjectInvoice, error) {
	proj, err := s.storage.Projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}

	invoice := &ProjectInvoice{
		ProjectID:         proj.ID,
		ProjectName:       proj.Name,
		ClientName:        proj.ClientName,
		ClientOwesCompany: decimal.Zero,
		CompanyOwesClient: decimal.Zero,
	}
	for _, row := range transactions {
		switch row.ReimbursementType {
		case summary.ReimbursementClientOwesCompany:
			invoice.ClientOwesCompany = invoice.ClientOwesCompany.Add(row.Amount)
		case summary.ReimbursementCompanyOwesClient:
			invoice.CompanyOwesClient = invoice.CompanyOwesClient.Add(row.Amount)
		default:
			continue
		}
		invoice.Lines = append(invoice.Lines, InvoiceLine{
			TransactionID:     row.ID,
			Source:            row.Source,
			Amount:            row.Amount,
			ReimbursementType: row.ReimbursementType,
			TransactionDate:   row.TransactionDate,
		})
	}
	return invoice, nil
}

func storageProjectToProject(row *project.Project) Project {
	categories := make([]CategoryAllocation, len(row.BudgetCategories))
	for i, category := range row.BudgetCategories {
		categories[i] = CategoryAllocation{
			ID:     category.ID,
			Name:   category.Name,
			Amount: category.Amount,
		}
	}
	return Project{
		ID:               row.ID,
		Name:             row.Name,
		ClientName:       row.ClientName,
		Budget:           row.Budget,
		DesignFee:        row.DesignFee,
		BudgetCategories: categories,
		CreatedAt:        row.CreatedAt,
	}
}

func categoriesToStorage(categories []CategoryAllocation) []project.CategoryAllocation {
	converted := make([]project.CategoryAllocation, len(categories))
	for i, category := range categories {
		converted[i] = project.CategoryAllocation{
			ID:     category.ID,
			Name:   category.Name,
			Amount: category.Amount,
		}
	}
	return converted
}

func itemToSummary(row *item.Item) summary.Item {
	transactionID := ""
	if row.TransactionID != nil {
		transactionID = row.TransactionID.String()
	}
	return summary.Item{
		ID:            row.ID.String(),
		TransactionID: transactionID,
		ProjectPrice:  row.ProjectPrice,
		MarketValue:   row.MarketValue,
	}
}

func itemsToSummary(rows []*item.Item) []summary.Item {
	converted := make([]summary.Item, len(rows))
	for i, row := range rows {
		converted[i] = itemToSummary(row)
	}
	return converted
}

func transactionsToSummary(rows []*transaction.Transaction) []summary.Transaction {
	converted := make([]summary.Transaction, len(rows))
	for i, row := range rows {
		projectID := ""
		if row.ProjectID != nil {
			projectID = row.ProjectID.String()
		}
		categoryID := ""
		if row.CategoryID != nil {
			categoryID = row.CategoryID.String()
		}
		receiptURLs := make([]string, 0, len(row.ReceiptImages))
		for _, image := range row.ReceiptImages {
			receiptURLs = append(receiptURLs, image.URL)
		}
		converted[i] = summary.Transaction{
			ID:                row.ID.String(),
			ProjectID:         projectID,
			CategoryID:        categoryID,
			BudgetCategory:    row.BudgetCategory,
			ReimbursementType: row.ReimbursementType,
			SystemRef:         row.SystemRef,
			ReceiptImageURLs:  receiptURLs,
		}
	}
	return converted
}
