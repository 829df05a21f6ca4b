package handler

import (
	"context"
	"errors"
	"net/http"

	"stadium-api/internal/metrics"
	"stadium-api/internal/models"
	"stadium-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StadiumSelector picks a random stadium for a round.
type StadiumSelector interface {
	SelectRandom(ctx context.Context, league string, exclude []string) (*models.StadiumProjection, error)
}

// CatalogQuerier exposes read-only views of the catalog.
type CatalogQuerier interface {
	ListAll(ctx context.Context) (*models.Catalog, error)
	DistinctSports(ctx context.Context) ([]string, error)
}

// SelectionRecorder counts selection outcomes.
type SelectionRecorder interface {
	RecordSelection(league, outcome string)
}

// StadiumHandler handles the stadium JSON API
type StadiumHandler struct {
	selector StadiumSelector
	catalog  CatalogQuerier
	recorder SelectionRecorder
}

// NewStadiumHandler creates a new stadium handler. recorder may be nil.
func NewStadiumHandler(selector StadiumSelector, catalog CatalogQuerier, recorder SelectionRecorder) *StadiumHandler {
	return &StadiumHandler{selector: selector, catalog: catalog, recorder: recorder}
}

// ListStadiums handles GET /api/stadiums requests
//
//	@Summary	List every stadium
//	@Tags		stadiums
//	@Produce	json
//	@Success	200	{object}	models.Catalog
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/stadiums [get]
func (h *StadiumHandler) ListStadiums(c *gin.Context) {
	catalog, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		internalError(c, err, "failed to list stadiums")
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// RandomStadium handles GET /api/stadium/random requests
//
//	@Summary		Pick a random stadium
//	@Description	Unknown league values are ignored and behave like "all".
//	@Tags			stadiums
//	@Produce		json
//	@Param			league	query		string		false	"League filter"	Enums(all, MLB, AAA, AA, High-A, Low-A, Spring, other)
//	@Param			exclude	query		[]string	false	"Stadium ids to skip"	collectionFormat(multi)
//	@Success		200		{object}	models.StadiumProjection
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/stadium/random [get]
func (h *StadiumHandler) RandomStadium(c *gin.Context) {
	league := c.Query("league")
	exclude := c.QueryArray("exclude")
	label := leagueLabel(league)

	if label == "unknown" {
		zerolog.Ctx(c.Request.Context()).Debug().Str("league", league).Msg("unrecognized league filter, returning unfiltered selection")
	}

	stadium, err := h.selector.SelectRandom(c.Request.Context(), league, exclude)
	if err != nil {
		if errors.Is(err, service.ErrNoEligibleStadiums) {
			h.record(label, metrics.OutcomeNoEligible)
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No stadiums available"})
			return
		}
		h.record(label, metrics.OutcomeError)
		internalError(c, err, "failed to select stadium")
		return
	}

	h.record(label, metrics.OutcomeSelected)
	c.JSON(http.StatusOK, stadium)
}

// ListSports handles GET /api/sports requests
//
//	@Summary	List distinct sports
//	@Tags		stadiums
//	@Produce	json
//	@Success	200	{array}		string
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/sports [get]
func (h *StadiumHandler) ListSports(c *gin.Context) {
	sports, err := h.catalog.DistinctSports(c.Request.Context())
	if err != nil {
		internalError(c, err, "failed to list sports")
		return
	}

	c.JSON(http.StatusOK, sports)
}

func (h *StadiumHandler) record(league, outcome string) {
	if h.recorder != nil {
		h.recorder.RecordSelection(league, outcome)
	}
}

// leagueLabel bounds the metric label values to the known tokens.
func leagueLabel(league string) string {
	switch {
	case league == "" || league == service.LeagueAll:
		return service.LeagueAll
	case service.IsKnownLeague(league):
		return league
	default:
		return "unknown"
	}
}
