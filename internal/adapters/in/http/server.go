package http

import (
	"errors"
	"net/http"
	"time"

	"crazygenerics/internal/core/application/usecases/commands"
	"crazygenerics/internal/core/application/usecases/queries"
	"crazygenerics/internal/core/domain/model/generic"
	"crazygenerics/internal/core/domain/model/kernel"
	"crazygenerics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server exposes the entity collection over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Storage backend name reported with every listing
	source string
	now    func() time.Time

	// Command handlers
	registerEntityHandler commands.RegisterEntityCommandHandler

	// Query handlers
	getEntitiesHandler         queries.GetEntitiesQueryHandler
	getLatestEntityHandler     queries.GetLatestEntityQueryHandler
	getCollectionReportHandler queries.GetCollectionReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
// source names the storage backend; now supplies the default creation time
// for entities registered without one (nil means time.Now).
func NewServer(
	source string,
	now func() time.Time,
	registerEntityHandler commands.RegisterEntityCommandHandler,
	getEntitiesHandler queries.GetEntitiesQueryHandler,
	getLatestEntityHandler queries.GetLatestEntityQueryHandler,
	getCollectionReportHandler queries.GetCollectionReportQueryHandler,
) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{
		source:                     source,
		now:                        now,
		registerEntityHandler:      registerEntityHandler,
		getEntitiesHandler:         getEntitiesHandler,
		getLatestEntityHandler:     getLatestEntityHandler,
		getCollectionReportHandler: getCollectionReportHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetEntities handles GET /api/v1/entities - retrieves all entities.
func (s *Server) GetEntities(ctx echo.Context) error {
	entities, err := s.getEntitiesHandler.Handle(ctx.Request().Context(), queries.NewGetEntitiesQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve entities")
	}

	sourced := generic.NewSourced(entities, s.source)
	return ctx.JSON(http.StatusOK, sourcedToResponse(sourced))
}

// CreateEntity handles POST /api/v1/entities - registers a new entity.
// Missing uuid and createdOn fields are generated.
func (s *Server) CreateEntity(ctx echo.Context) error {
	var body NewEntity
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	id := kernel.NewUUID()
	if body.UUID != nil {
		parsed, err := kernel.UUIDFromString(*body.UUID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid entity data: "+err.Error())
		}
		id = parsed
	}

	createdOn := s.now()
	if body.CreatedOn != nil {
		createdOn = *body.CreatedOn
	}

	cmd, err := commands.NewRegisterEntityCommand(id, createdOn)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid entity data: "+err.Error())
	}

	entity, err := s.registerEntityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to register entity")
	}

	return ctx.JSON(http.StatusCreated, entityToResponse.Convert(entity))
}

// GetLatestEntity handles GET /api/v1/entities/latest.
func (s *Server) GetLatestEntity(ctx echo.Context) error {
	entity, err := s.getLatestEntityHandler.Handle(ctx.Request().Context(), queries.NewGetLatestEntityQuery())
	if errors.Is(err, errs.ErrNoSuchElement) {
		return errorResponse(ctx, http.StatusNotFound, "No entities stored")
	}
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve latest entity")
	}

	return ctx.JSON(http.StatusOK, entityToResponse.Convert(entity))
}

// GetCollectionReport handles GET /api/v1/entities/report?target=<uuid>.
func (s *Server) GetCollectionReport(ctx echo.Context) error {
	var rawTarget *string
	if err := runtime.BindQueryParameter("form", true, false, "target", ctx.QueryParams(), &rawTarget); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid format for parameter target: "+err.Error())
	}

	var target *kernel.UUID
	if rawTarget != nil {
		parsed, err := kernel.UUIDFromString(*rawTarget)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid format for parameter target: "+err.Error())
		}
		target = &parsed
	}

	query, err := queries.NewGetCollectionReportQuery(target)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid report query: "+err.Error())
	}

	report, err := s.getCollectionReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to build collection report")
	}

	return ctx.JSON(http.StatusOK, reportToResponse(report))
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
