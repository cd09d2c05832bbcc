package item

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

// Item is the API response model for an inventory or line item. Price fields
// are returned exactly as they were entered.
type Item struct {
	ID            string  `json:"id" doc:"Item UUID"`
	ProjectID     string  `json:"projectID,omitempty" doc:"Project UUID, empty for business inventory"`
	TransactionID string  `json:"transactionID,omitempty" doc:"Originating transaction UUID"`
	Description   string  `json:"description" doc:"Item description"`
	SKU           string  `json:"sku,omitempty" doc:"SKU"`
	Source        string  `json:"source,omitempty" doc:"Vendor or source"`
	PurchasePrice string  `json:"purchasePrice,omitempty" doc:"Purchase price as entered"`
	ProjectPrice  string  `json:"projectPrice,omitempty" doc:"Price billed to the client as entered"`
	MarketValue   string  `json:"marketValue,omitempty" doc:"Market value as entered"`
	Space         string  `json:"space,omitempty" doc:"Room or space label"`
	Notes         string  `json:"notes,omitempty" doc:"Free-form notes"`
	Bookmarked    bool    `json:"bookmarked" doc:"Bookmark flag"`
	Disposition   string  `json:"disposition" doc:"keep, to-return, returned, or inventory"`
	Images        []Image `json:"images,omitempty" doc:"Attached images"`
	CreatedAt     string  `json:"createdAt" doc:"RFC3339 creation time"`
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

func itemToAPI(it service.Item) Item {
	out := Item{
		ID:            it.ID.String(),
		Description:   it.Description,
		SKU:           it.SKU,
		Source:        it.Source,
		PurchasePrice: it.PurchasePrice,
		ProjectPrice:  it.ProjectPrice,
		MarketValue:   it.MarketValue,
		Space:         it.Space,
		Notes:         it.Notes,
		Bookmarked:    it.Bookmarked,
		Disposition:   it.Disposition,
		Images:        imagesToAPI(it.Images),
		CreatedAt:     it.CreatedAt.Format(time.RFC3339),
	}
	if it.ProjectID != nil {
		out.ProjectID = it.ProjectID.String()
	}
	if it.TransactionID != nil {
		out.TransactionID = it.TransactionID.String()
	}
	return out
}
