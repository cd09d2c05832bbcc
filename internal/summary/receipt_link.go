package summary

import "strings"

// CanonicalRefPrefix marks system-generated billing transactions.
const CanonicalRefPrefix = "CANONICAL-"

// Cross-entity reimbursement types; either direction marks the transaction
// as firm-level billing rather than an ordinary purchase.
const (
	ReimbursementClientOwesCompany = "client_owes_company"
	ReimbursementCompanyOwesClient = "company_owes_client"
)

type LinkKind string

const (
	LinkInternal LinkKind = "internal"
	LinkExternal LinkKind = "external"
)

// ReceiptLink points at the proof of purchase for an item: either an
// external receipt image or the internal invoice view for billing
// transactions.
type ReceiptLink struct {
	Kind LinkKind
	Href string
}

// ResolveReceiptLink finds the proof-of-purchase link for an item.
//
// Items without a transaction reference get no link, and a reference that
// isn't in the loaded transaction set also gets no link — there is no
// fallback search. Canonical billing transactions link to the project
// invoice view; ordinary transactions link to their first receipt image.
func ResolveReceiptLink(item Item, transactions []Transaction) *ReceiptLink {
	if item.TransactionID == "" {
		return nil
	}

	var found *Transaction
	for i := range transactions {
		if transactions[i].ID == item.TransactionID {
			found = &transactions[i]
			break
		}
	}
	if found == nil {
		return nil
	}

	if isCanonical(found) {
		if found.ProjectID == "" {
			return nil
		}
		return &ReceiptLink{
			Kind: LinkInternal,
			Href: "/projects/" + found.ProjectID + "/invoice",
		}
	}

	if len(found.ReceiptImageURLs) > 0 {
		return &ReceiptLink{
			Kind: LinkExternal,
			Href: found.ReceiptImageURLs[0],
		}
	}

	return nil
}

func isCanonical(transaction *Transaction) bool {
	if strings.HasPrefix(transaction.SystemRef, CanonicalRefPrefix) {
		return true
	}
	switch transaction.ReimbursementType {
	case ReimbursementClientOwesCompany, ReimbursementCompanyOwesClient:
		return true
	}
	return false
}
