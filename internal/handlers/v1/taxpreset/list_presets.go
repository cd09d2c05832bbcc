package taxpreset

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hartley-interiors/studio-server/internal/logging"
	"github.com/hartley-interiors/studio-server/internal/service"
)

// TaxPreset is the API model for one named tax rate.
type TaxPreset struct {
	ID   string `json:"id" doc:"Preset UUID"`
	Name string `json:"name" doc:"Preset name shown in the form"`
	Rate string `json:"rate" doc:"Tax rate as a decimal fraction"`
}

// ListTaxPresetsResponseBody is the response body for listing tax presets.
type ListTaxPresetsResponseBody struct {
	Presets []TaxPreset `json:"presets" doc:"Presets in display order"`
}

// ListTaxPresetsOutput is the Huma output for listing tax presets.
type ListTaxPresetsOutput struct {
	Body ListTaxPresetsResponseBody
}

// presetLister is the interface for listing tax presets.
type presetLister interface {
	ListTaxPresets(ctx context.Context) ([]service.TaxPreset, error)
}

// ListTaxPresetsHandler handles GET /v1/tax-preset.
type ListTaxPresetsHandler struct {
	TaxPresetService presetLister
}

// NewListTaxPresetsHandler creates a new ListTaxPresetsHandler.
func NewListTaxPresetsHandler(svc presetLister) *ListTaxPresetsHandler {
	return &ListTaxPresetsHandler{TaxPresetService: svc}
}

// Register registers the list tax presets endpoint with the Huma API.
func (h *ListTaxPresetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-tax-presets",
		Method:      http.MethodGet,
		Path:        "/v1/tax-preset",
		Summary:     "List tax presets",
		Description: "Returns the tax rate presets offered in the transaction form.",
		Tags:        []string{"TaxPresets"},
	}, h.handle)
}

func (h *ListTaxPresetsHandler) handle(ctx context.Context, _ *struct{}) (*ListTaxPresetsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTaxPresetsMs")
	}
	presets, err := h.TaxPresetService.ListTaxPresets(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list tax presets", err)
	}

	resp := ListTaxPresetsResponseBody{Presets: make([]TaxPreset, len(presets))}
	for i, preset := range presets {
		resp.Presets[i] = TaxPreset{
			ID:   preset.ID.String(),
			Name: preset.Name,
			Rate: preset.Rate.String(),
		}
	}

	return &ListTaxPresetsOutput{Body: resp}, nil
}
