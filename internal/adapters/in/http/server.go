// Package http exposes the application's commands and queries as a JSON API.
// Handlers translate requests into commands, delegate to the use case layer,
// and map the core error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"cargospace/internal/core/application/usecases/commands"
	"cargospace/internal/core/application/usecases/queries"
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/core/domain/model/space"
	"cargospace/internal/core/domain/model/transaction"
	"cargospace/internal/core/domain/model/user"
	"cargospace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler          commands.RegisterUserCommandHandler
	createSpaceHandler           commands.CreateSpaceCommandHandler
	setSpaceStatusHandler        commands.SetSpaceStatusCommandHandler
	bookShipmentHandler          commands.BookShipmentCommandHandler
	advanceShipmentStatusHandler commands.AdvanceShipmentStatusCommandHandler
	createTransactionHandler     commands.CreateTransactionCommandHandler
	confirmTransactionHandler    commands.ConfirmTransactionCommandHandler
	appendTrackingEventHandler   commands.AppendTrackingEventCommandHandler

	// Query handlers
	searchSpacesHandler             queries.SearchSpacesQueryHandler
	getSpaceByIDHandler             queries.GetSpaceByIDQueryHandler
	getSpacesByOwnerHandler         queries.GetSpacesByOwnerQueryHandler
	getShipmentsByUserHandler       queries.GetShipmentsByUserQueryHandler
	getShipmentByIDHandler          queries.GetShipmentByIDQueryHandler
	listTrackingEventsHandler       queries.ListTrackingEventsQueryHandler
	getTransactionByShipmentHandler queries.GetTransactionByShipmentQueryHandler
	getTransactionByIDHandler       queries.GetTransactionByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createSpaceHandler commands.CreateSpaceCommandHandler,
	setSpaceStatusHandler commands.SetSpaceStatusCommandHandler,
	bookShipmentHandler commands.BookShipmentCommandHandler,
	advanceShipmentStatusHandler commands.AdvanceShipmentStatusCommandHandler,
	createTransactionHandler commands.CreateTransactionCommandHandler,
	confirmTransactionHandler commands.ConfirmTransactionCommandHandler,
	appendTrackingEventHandler commands.AppendTrackingEventCommandHandler,
	searchSpacesHandler queries.SearchSpacesQueryHandler,
	getSpaceByIDHandler queries.GetSpaceByIDQueryHandler,
	getSpacesByOwnerHandler queries.GetSpacesByOwnerQueryHandler,
	getShipmentsByUserHandler queries.GetShipmentsByUserQueryHandler,
	getShipmentByIDHandler queries.GetShipmentByIDQueryHandler,
	listTrackingEventsHandler queries.ListTrackingEventsQueryHandler,
	getTransactionByShipmentHandler queries.GetTransactionByShipmentQueryHandler,
	getTransactionByIDHandler queries.GetTransactionByIDQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:             registerUserHandler,
		createSpaceHandler:              createSpaceHandler,
		setSpaceStatusHandler:           setSpaceStatusHandler,
		bookShipmentHandler:             bookShipmentHandler,
		advanceShipmentStatusHandler:    advanceShipmentStatusHandler,
		createTransactionHandler:        createTransactionHandler,
		confirmTransactionHandler:       confirmTransactionHandler,
		appendTrackingEventHandler:      appendTrackingEventHandler,
		searchSpacesHandler:             searchSpacesHandler,
		getSpaceByIDHandler:             getSpaceByIDHandler,
		getSpacesByOwnerHandler:         getSpacesByOwnerHandler,
		getShipmentsByUserHandler:       getShipmentsByUserHandler,
		getShipmentByIDHandler:          getShipmentByIDHandler,
		listTrackingEventsHandler:       listTrackingEventsHandler,
		getTransactionByShipmentHandler: getTransactionByShipmentHandler,
		getTransactionByIDHandler:       getTransactionByIDHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/users", s.RegisterUser)

	e.GET("/api/spaces", s.SearchSpaces)
	e.GET("/api/spaces/:id", s.GetSpaceByID)
	e.POST("/api/spaces", s.CreateSpace)
	e.PATCH("/api/spaces/:id/status", s.SetSpaceStatus)

	e.GET("/api/shipments", s.GetShipmentsByUser)
	e.GET("/api/shipments/:id", s.GetShipmentByID)
	e.POST("/api/shipments", s.BookShipment)
	e.PATCH("/api/shipments/:id/status", s.AdvanceShipmentStatus)
	e.GET("/api/shipments/:id/transaction", s.GetTransactionByShipment)
	e.GET("/api/shipments/:id/tracking", s.ListTrackingEvents)

	e.GET("/api/transactions/:id", s.GetTransactionByID)
	e.POST("/api/transactions", s.CreateTransaction)
	e.PATCH("/api/transactions/:id/confirm", s.ConfirmTransaction)

	e.POST("/api/tracking", s.AppendTrackingEvent)
}

// RegisterUser handles POST /api/users - registers a new user account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		req.Username,
		req.Email,
		req.FirstName,
		req.LastName,
		role,
		req.WalletAddress,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	registered, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UserResponse{
		ID:            registered.ID().String(),
		Username:      registered.Username(),
		Email:         registered.Email(),
		FirstName:     registered.FirstName(),
		LastName:      registered.LastName(),
		Role:          registered.Role().String(),
		WalletAddress: registered.WalletAddress(),
	})
}

// SearchSpaces handles GET /api/spaces - lists spaces. With userId set it
// lists that owner's spaces; otherwise source and destination act as
// exact-match filters and empty values match everything.
func (s *Server) SearchSpaces(ctx echo.Context) error {
	var spaces []queries.SearchSpacesQueryResponse

	if userID := ctx.QueryParam("userId"); userID != "" {
		ownerID, err := kernel.UUIDFromString(userID)
		if err != nil {
			return errorJSON(ctx, err)
		}

		query, err := queries.NewGetSpacesByOwnerQuery(ownerID)
		if err != nil {
			return errorJSON(ctx, err)
		}

		spaces, err = s.getSpacesByOwnerHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return errorJSON(ctx, err)
		}
	} else {
		query := queries.NewSearchSpacesQuery(
			ctx.QueryParam("source"),
			ctx.QueryParam("destination"),
		)

		var err error
		spaces, err = s.searchSpacesHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return errorJSON(ctx, err)
		}
	}

	response := make([]SpaceResponse, len(spaces))
	for i, sp := range spaces {
		response[i] = spaceResponseFromReadModel(sp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSpaceByID handles GET /api/spaces/:id.
func (s *Server) GetSpaceByID(ctx echo.Context) error {
	spaceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetSpaceByIDQuery(spaceID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	sp, err := s.getSpaceByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, spaceResponseFromReadModel(*sp))
}

// CreateSpace handles POST /api/spaces - registers a new logistics space.
func (s *Server) CreateSpace(ctx echo.Context) error {
	var req CreateSpaceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateSpaceCommand(
		kernel.NewUUID(),
		req.TokenID,
		req.Source,
		req.Destination,
		req.Dimensions,
		req.MaxWeight,
		ownerID,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createSpaceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, spaceResponseFromAggregate(created))
}

// SetSpaceStatus handles PATCH /api/spaces/:id/status - sets a space's
// availability status.
func (s *Server) SetSpaceStatus(ctx echo.Context) error {
	spaceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SetStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := space.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSetSpaceStatusCommand(spaceID, status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.setSpaceStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, spaceResponseFromAggregate(updated))
}

// GetShipmentsByUser handles GET /api/shipments - lists a user's shipments.
// The userId query parameter is required.
func (s *Server) GetShipmentsByUser(ctx echo.Context) error {
	userID := ctx.QueryParam("userId")
	if userID == "" {
		return badRequest(ctx, "userId query parameter is required")
	}

	ownerID, err := kernel.UUIDFromString(userID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetShipmentsByUserQuery(ownerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	shipments, err := s.getShipmentsByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ShipmentResponse, len(shipments))
	for i, sh := range shipments {
		response[i] = ShipmentResponse{
			ID:        sh.ID.String(),
			SpaceID:   sh.SpaceID.String(),
			OwnerID:   ownerID.String(),
			GoodsType: sh.GoodsType,
			Weight:    sh.Weight,
			Status:    sh.Status.String(),
			CreatedAt: sh.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentByID handles GET /api/shipments/:id.
func (s *Server) GetShipmentByID(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetShipmentByIDQuery(shipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	sh, err := s.getShipmentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentResponse{
		ID:        sh.ID.String(),
		SpaceID:   sh.SpaceID.String(),
		OwnerID:   sh.OwnerID.String(),
		GoodsType: sh.GoodsType,
		Weight:    sh.Weight,
		Status:    sh.Status.String(),
		CreatedAt: sh.CreatedAt,
	})
}

// BookShipment handles POST /api/shipments - books a shipment against a
// space.
func (s *Server) BookShipment(ctx echo.Context) error {
	var req BookShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spaceID, err := kernel.UUIDFromString(req.SpaceID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewBookShipmentCommand(
		kernel.NewUUID(),
		spaceID,
		ownerID,
		req.GoodsType,
		req.Weight,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	booked, err := s.bookShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentResponseFromAggregate(booked))
}

// AdvanceShipmentStatus handles PATCH /api/shipments/:id/status - moves a
// shipment forward in its lifecycle.
func (s *Server) AdvanceShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SetStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAdvanceShipmentStatusCommand(shipmentID, status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	advanced, err := s.advanceShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromAggregate(advanced))
}

// GetTransactionByShipment handles GET /api/shipments/:id/transaction.
func (s *Server) GetTransactionByShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetTransactionByShipmentQuery(shipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	tr, err := s.getTransactionByShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransactionResponse{
		ID:               tr.ID.String(),
		ShipmentID:       tr.ShipmentID.String(),
		Amount:           tr.Amount,
		Status:           tr.Status.String(),
		BlockchainTxHash: tr.BlockchainTxHash,
	})
}

// GetTransactionByID handles GET /api/transactions/:id.
func (s *Server) GetTransactionByID(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetTransactionByIDQuery(transactionID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	tr, err := s.getTransactionByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransactionResponse{
		ID:               tr.ID.String(),
		ShipmentID:       tr.ShipmentID.String(),
		Amount:           tr.Amount,
		Status:           tr.Status.String(),
		BlockchainTxHash: tr.BlockchainTxHash,
	})
}

// CreateTransaction handles POST /api/transactions - opens a settlement
// transaction for a shipment and confirms the shipment.
func (s *Server) CreateTransaction(ctx echo.Context) error {
	var req CreateTransactionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateTransactionCommand(kernel.NewUUID(), shipmentID, req.Amount)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createTransactionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, transactionResponseFromAggregate(created))
}

// ConfirmTransaction handles PATCH /api/transactions/:id/confirm - completes
// a transaction with its blockchain settlement hash.
func (s *Server) ConfirmTransaction(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req ConfirmTransactionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmTransactionCommand(transactionID, req.BlockchainTxHash)
	if err != nil {
		return errorJSON(ctx, err)
	}

	confirmed, err := s.confirmTransactionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transactionResponseFromAggregate(confirmed))
}

// ListTrackingEvents handles GET /api/shipments/:id/tracking - returns the
// shipment's tracking trail in append order.
func (s *Server) ListTrackingEvents(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewListTrackingEventsQuery(shipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	events, err := s.listTrackingEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]TrackingEventResponse, len(events))
	for i, event := range events {
		response[i] = TrackingEventResponse{
			ID:         event.ID.String(),
			ShipmentID: shipmentID.String(),
			EventType:  event.EventType,
			Location:   event.Location,
			Details:    event.Details,
			Timestamp:  event.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AppendTrackingEvent handles POST /api/tracking - appends a tracking event
// and advances the shipment when the event implies a later status.
func (s *Server) AppendTrackingEvent(ctx echo.Context) error {
	var req AppendTrackingEventRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var timestamp time.Time
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	cmd, err := commands.NewAppendTrackingEventCommand(
		kernel.NewUUID(),
		shipmentID,
		req.EventType,
		req.Location,
		req.Details,
		timestamp,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	appended, err := s.appendTrackingEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TrackingEventResponse{
		ID:         appended.ID().String(),
		ShipmentID: appended.ShipmentID().String(),
		EventType:  appended.EventType(),
		Location:   appended.Location(),
		Details:    appended.Details(),
		Timestamp:  appended.Timestamp(),
	})
}

// errorJSON maps a core error onto an HTTP status code and writes the
// standard error body.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func spaceResponseFromReadModel(sp queries.SearchSpacesQueryResponse) SpaceResponse {
	return SpaceResponse{
		ID:          sp.ID.String(),
		TokenID:     sp.TokenID,
		Source:      sp.Source,
		Destination: sp.Destination,
		Dimensions:  sp.Dimensions,
		MaxWeight:   sp.MaxWeight,
		OwnerID:     sp.OwnerID.String(),
		Status:      sp.Status.String(),
	}
}

func spaceResponseFromAggregate(sp *space.Space) SpaceResponse {
	return SpaceResponse{
		ID:          sp.ID().String(),
		TokenID:     sp.TokenID(),
		Source:      sp.Source(),
		Destination: sp.Destination(),
		Dimensions:  sp.Dimensions(),
		MaxWeight:   sp.MaxWeight(),
		OwnerID:     sp.Owner().String(),
		Status:      sp.Status().String(),
	}
}

func shipmentResponseFromAggregate(sh *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:        sh.ID().String(),
		SpaceID:   sh.SpaceID().String(),
		OwnerID:   sh.Owner().String(),
		GoodsType: sh.GoodsType(),
		Weight:    sh.Weight(),
		Status:    sh.Status().String(),
	}
}

func transactionResponseFromAggregate(tr *transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               tr.ID().String(),
		ShipmentID:       tr.ShipmentID().String(),
		Amount:           tr.Amount(),
		Status:           tr.Status().String(),
		BlockchainTxHash: tr.BlockchainTxHash(),
	}
}
