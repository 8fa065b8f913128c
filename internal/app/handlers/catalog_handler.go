package handlers

import (
	"context"
	"net/http"
	"time"

	appContext "github.com/zaiboost/zaiboost/internal/app/context"
	"github.com/zaiboost/zaiboost/internal/app/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	contextTimeout time.Duration
}

func NewCatalogHandler(contextTimeoutSec int, catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// ListServices godoc
// @Summary Service catalog
// @Description Lists every boosting service with its pricing.
// @Tags catalog
// @Produce json
// @Success 200 {array} ServiceDTO "Catalog"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /services [get]
func (ch *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ch.contextTimeout)
	defer cancel()

	services, err := ch.catalogService.ListServices(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toServiceDTOs(services))
}
