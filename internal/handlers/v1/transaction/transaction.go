package transaction

import (
	"time"

	"github.com/hartley-interiors/studio-server/internal/service"
	"github.com/hartley-interiors/studio-server/internal/storage/media"
)

// Image is the API representation of one attached image.
type Image struct {
	URL       string `json:"url" doc:"Public URL of the stored image"`
	Filename  string `json:"filename" doc:"Original filename"`
	Size      int64  `json:"size" doc:"Size in bytes"`
	MimeType  string `json:"mimeType" doc:"MIME type"`
	IsPrimary bool   `json:"isPrimary" doc:"Primary image flag"`
	Caption   string `json:"caption,omitempty" doc:"Optional caption"`
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                string  `json:"id" doc:"Transaction UUID"`
	ProjectID         string  `json:"projectID,omitempty" doc:"Project UUID, empty for business inventory"`
	Source            string  `json:"source" doc:"Vendor or source of the purchase"`
	TransactionType   string  `json:"transactionType" doc:"Purchase, To Inventory, or Return"`
	PaymentMethod     string  `json:"paymentMethod" doc:"Payment method"`
	BudgetCategory    string  `json:"budgetCategory" doc:"Budget category name"`
	CategoryID        string  `json:"categoryID,omitempty" doc:"Budget category UUID when the project uses category allocations"`
	Amount            string  `json:"amount" doc:"Decimal amount"`
	Subtotal          string  `json:"subtotal,omitempty" doc:"Pre-tax subtotal, present when a tax preset applies"`
	TaxRatePreset     string  `json:"taxRatePreset,omitempty" doc:"Tax rate preset name"`
	ReimbursementType string  `json:"reimbursementType,omitempty" doc:"client_owes_company or company_owes_client"`
	Status            string  `json:"status" doc:"pending, completed, or cancelled"`
	Notes             string  `json:"notes,omitempty" doc:"Free-form notes"`
	TransactionDate   string  `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt         string  `json:"createdAt" doc:"RFC3339 creation time"`
	ReceiptImages     []Image `json:"receiptImages,omitempty" doc:"Receipt images"`
	OtherImages       []Image `json:"otherImages,omitempty" doc:"Other supporting images"`
}

// StagedFile is an image file staged for upload in a create request.
type StagedFile struct {
	Filename string `json:"filename" required:"true" doc:"Original filename"`
	MimeType string `json:"mimeType" doc:"MIME type"`
	Data     []byte `json:"data" required:"true" doc:"Base64 file contents"`
}

func imagesToAPI(images []media.Image) []Image {
	if len(images) == 0 {
		return nil
	}
	out := make([]Image, len(images))
	for i, img := range images {
		out[i] = Image{
			URL:       img.URL,
			Filename:  img.Filename,
			Size:      img.Size,
			MimeType:  img.MimeType,
			IsPrimary: img.IsPrimary,
			Caption:   img.Caption,
		}
	}
	return out
}

func transactionToAPI(tx service.Transaction) Transaction {
	out := Transaction{
		ID:                tx.ID.String(),
		Source:            tx.Source,
		TransactionType:   tx.TransactionType,
		PaymentMethod:     tx.PaymentMethod,
		BudgetCategory:    tx.BudgetCategory,
		Amount:            tx.Amount.String(),
		TaxRatePreset:     tx.TaxRatePreset,
		ReimbursementType: tx.ReimbursementType,
		Status:            tx.Status,
		Notes:             tx.Notes,
		TransactionDate:   tx.TransactionDate.Format(time.RFC3339),
		CreatedAt:         tx.CreatedAt.Format(time.RFC3339),
		ReceiptImages:     imagesToAPI(tx.ReceiptImages),
		OtherImages:       imagesToAPI(tx.OtherImages),
	}
	if tx.ProjectID != nil {
		out.ProjectID = tx.ProjectID.String()
	}
	if tx.CategoryID != nil {
		out.CategoryID = tx.CategoryID.String()
	}
	if tx.Subtotal.Valid {
		out.Subtotal = tx.Subtotal.Decimal.String()
	}
	return out
}
