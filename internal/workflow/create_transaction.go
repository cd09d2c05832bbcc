package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hartley-interiors/studio-server/internal/storage/item"
	"github.com/hartley-interiors/studio-server/internal/storage/media"
	"github.com/hartley-interiors/studio-server/internal/storage/transaction"
	"github.com/hartley-interiors/studio-server/internal/uploads"
)

// ErrCreateFailed is surfaced when the transaction row itself could not be
// created; nothing has been persisted and no uploads were attempted.
var ErrCreateFailed = errors.New("failed to create transaction")

// ValidationError carries the field error map of an invalid draft.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "transaction draft is invalid"
}

// Result reports the outcome of the creation workflow. FieldErrors is
// non-empty when an image step failed after the transaction was created; the
// transaction stands either way.
type Result struct {
	TransactionID uuid.UUID
	FieldErrors   map[string]string
	Halted        bool
}

// transactionStore is the slice of the transaction service the workflow
// needs. CreateWithItems returns the created item IDs in the order the item
// creates were given; the database row order is no substitute, all items
// of one transaction share a created_at.
type transactionStore interface {
	CreateWithItems(ctx context.Context, create transaction.TransactionCreate, items []item.ItemCreate) (uuid.UUID, []uuid.UUID, error)
	SetReceiptImages(ctx context.Context, id uuid.UUID, images []media.Image) error
	SetOtherImages(ctx context.Context, id uuid.UUID, images []media.Image) error
}

// itemStore is the slice of the item service the workflow needs.
type itemStore interface {
	SetImages(ctx context.Context, id uuid.UUID, images []media.Image) error
}

// Creator runs the transaction-with-items creation workflow: create the
// transaction and its line items in one call, then upload and patch in
// receipt images, other images, and per-item images, tolerating image
// failures without rolling back the transaction.
type Creator struct {
	Transactions transactionStore
	Items        itemStore
	Uploader     uploads.Service
	Logger       *logrus.Logger
}

func NewCreator(transactions transactionStore, items itemStore, uploader uploads.Service, logger *logrus.Logger) *Creator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Creator{
		Transactions: transactions,
		Items:        items,
		Uploader:     uploader,
		Logger:       logger,
	}
}

// Run executes the workflow. It returns an error only when the draft is
// invalid (*ValidationError) or the create call itself fails (ErrCreateFailed);
// image failures after creation come back in Result.FieldErrors with
// Result.Halted set, alongside the created transaction's ID.
func (c *Creator) Run(ctx context.Context, draft TransactionDraft, itemDrafts []ItemDraft) (*Result, error) {
	if fieldErrors := ValidateDraft(draft); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	transactionID, itemIDs, err := c.Transactions.CreateWithItems(ctx, draftToCreate(draft), draftsToItemCreates(itemDrafts))
	if err != nil {
		c.Logger.WithError(err).Error("Workflow.CreateTransaction.create failed")
		return nil, ErrCreateFailed
	}

	result := &Result{TransactionID: transactionID, FieldErrors: map[string]string{}}

	if len(draft.ReceiptFiles) > 0 {
		if !c.uploadTransactionImages(ctx, result, transactionID, draft.ReceiptFiles, FieldReceiptImages, c.Transactions.SetReceiptImages) {
			return result, nil
		}
	}

	if len(draft.OtherFiles) > 0 {
		if !c.uploadTransactionImages(ctx, result, transactionID, draft.OtherFiles, FieldOtherImages, c.Transactions.SetOtherImages) {
			return result, nil
		}
	}

	c.uploadItemImages(ctx, itemIDs, itemDrafts)

	return result, nil
}

// uploadTransactionImages runs one transaction-level image step. A failure
// records a field error and halts the remaining workflow; the transaction
// itself stays created.
func (c *Creator) uploadTransactionImages(
	ctx context.Context,
	result *Result,
	transactionID uuid.UUID,
	files []uploads.StagedFile,
	field string,
	patch func(context.Context, uuid.UUID, []media.Image) error,
) bool {
	results, err := c.Uploader.UploadMultiple(ctx, files, nil)
	if err == nil {
		err = patch(ctx, transactionID, uploads.ResultsToImages(results, ""))
	}
	if err != nil {
		if uploads.IsCancellation(err) {
			// The user backed out; the transaction stands, nothing to report.
			c.Logger.WithFields(logrus.Fields{
				"transactionID": transactionID.String(),
				"field":         field,
			}).Info("Workflow.CreateTransaction.image step canceled")
			return false
		}
		kind := uploads.KindOf(err)
		c.Logger.WithError(err).WithFields(logrus.Fields{
			"transactionID": transactionID.String(),
			"field":         field,
			"kind":          string(kind),
		}).Error("Workflow.CreateTransaction.image step failed")
		result.FieldErrors[field] = uploads.UserMessage(kind)
		result.Halted = true
		return false
	}
	return true
}

// uploadItemImages uploads staged files for each line item and patches the
// item's image list. Files for one item upload concurrently; items are
// processed one after another so a bad item never disturbs its siblings.
// Failures here are logged only, the transaction and items already exist.
func (c *Creator) uploadItemImages(ctx context.Context, itemIDs []uuid.UUID, itemDrafts []ItemDraft) {
	// itemIDs comes straight from the create call, index-aligned with the
	// drafts, so each draft's files land on the item it described.
	for index, draft := range itemDrafts {
		if len(draft.Files) == 0 || index >= len(itemIDs) {
			continue
		}
		c.uploadImagesForItem(ctx, itemIDs[index], draft)
	}
}

func (c *Creator) uploadImagesForItem(ctx context.Context, itemID uuid.UUID, draft ItemDraft) {
	images := make([]media.Image, len(draft.Files))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, file := range draft.Files {
		group.Go(func() error {
			result, err := c.Uploader.Upload(groupCtx, file)
			if err != nil {
				if uploads.IsCancellation(err) {
					c.Logger.WithFields(logrus.Fields{
						"itemID":   itemID.String(),
						"filename": file.Filename,
					}).Info("Workflow.CreateTransaction.item image upload canceled")
				} else {
					c.Logger.WithError(err).WithFields(logrus.Fields{
						"itemID":   itemID.String(),
						"filename": file.Filename,
					}).Warn("Workflow.CreateTransaction.item image upload failed")
				}
				// Placeholder with an empty URL, filtered below.
				images[i] = media.Image{Filename: file.Filename}
				return nil
			}
			images[i] = media.Image{
				URL:       result.URL,
				Filename:  result.Filename,
				Size:      result.Size,
				MimeType:  result.MimeType,
				IsPrimary: draft.PrimaryFilename != "" && result.Filename == draft.PrimaryFilename,
			}
			return nil
		})
	}
	_ = group.Wait()

	valid := images[:0]
	for _, image := range images {
		if image.URL != "" {
			valid = append(valid, image)
		}
	}
	if len(valid) == 0 {
		return
	}

	if err := c.Items.SetImages(ctx, itemID, valid); err != nil {
		c.Logger.WithError(err).WithField("itemID", itemID.String()).
			Warn("Workflow.CreateTransaction.item image patch failed")
	}
}

func draftToCreate(draft TransactionDraft) transaction.TransactionCreate {
	// Validation has run by the time we get here, the parses cannot fail.
	amount, _ := decimal.NewFromString(strings.TrimSpace(draft.Amount))

	var subtotal decimal.NullDecimal
	if trimmed := strings.TrimSpace(draft.Subtotal); trimmed != "" {
		if parsed, err := decimal.NewFromString(trimmed); err == nil {
			subtotal = decimal.NewNullDecimal(parsed)
		}
	}

	transactionDate := draft.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	return transaction.TransactionCreate{
		ProjectID:         draft.ProjectID,
		Source:            strings.TrimSpace(draft.Source),
		TransactionType:   draft.TransactionType,
		PaymentMethod:     draft.PaymentMethod,
		BudgetCategory:    draft.BudgetCategory,
		CategoryID:        draft.CategoryID,
		Amount:            amount,
		Subtotal:          subtotal,
		TaxRatePreset:     draft.TaxRatePreset,
		ReimbursementType: draft.ReimbursementType,
		Notes:             draft.Notes,
		TransactionDate:   transactionDate,
	}
}

func draftsToItemCreates(itemDrafts []ItemDraft) []item.ItemCreate {
	creates := make([]item.ItemCreate, len(itemDrafts))
	for i, draft := range itemDrafts {
		creates[i] = item.ItemCreate{
			Description:   draft.Description,
			SKU:           draft.SKU,
			Source:        draft.Source,
			PurchasePrice: draft.PurchasePrice,
			ProjectPrice:  draft.ProjectPrice,
			MarketValue:   draft.MarketValue,
			Space:         draft.Space,
			Notes:         draft.Notes,
		}
	}
	return creates
}
