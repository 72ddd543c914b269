package http

import (
	"errors"
	"net/http"

	"aiddelivery/internal/core/application/usecases/commands"
	"aiddelivery/internal/core/application/usecases/queries"
	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
	"aiddelivery/internal/generated/servers"
	"aiddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler    commands.CreateDeliveryCommandHandler
	authorizeDeliveryHandler commands.AuthorizeDeliveryCommandHandler
	receiveWarehouseHandler  commands.ReceiveWarehouseCommandHandler
	prepareDeliveryHandler   commands.PrepareDeliveryCommandHandler
	markReadyHandler         commands.MarkReadyCommandHandler
	completeDeliveryHandler  commands.CompleteDeliveryCommandHandler
	cancelDeliveryHandler    commands.CancelDeliveryCommandHandler

	// Query handlers
	getDeliveryHandler        queries.GetDeliveryQueryHandler
	listStockMovementsHandler queries.ListStockMovementsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	authorizeDeliveryHandler commands.AuthorizeDeliveryCommandHandler,
	receiveWarehouseHandler commands.ReceiveWarehouseCommandHandler,
	prepareDeliveryHandler commands.PrepareDeliveryCommandHandler,
	markReadyHandler commands.MarkReadyCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	listStockMovementsHandler queries.ListStockMovementsQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:     createDeliveryHandler,
		authorizeDeliveryHandler:  authorizeDeliveryHandler,
		receiveWarehouseHandler:   receiveWarehouseHandler,
		prepareDeliveryHandler:    prepareDeliveryHandler,
		markReadyHandler:          markReadyHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		cancelDeliveryHandler:     cancelDeliveryHandler,
		getDeliveryHandler:        getDeliveryHandler,
		listStockMovementsHandler: listStockMovementsHandler,
	}
}

// CreateDelivery handles POST /api/v1/deliveries - opens a delivery against
// an approved aid request.
func (s *Server) CreateDelivery(ctx echo.Context, params servers.CreateDeliveryParams) error {
	var newDelivery servers.NewDelivery
	if err := ctx.Bind(&newDelivery); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromBytes(params.XActorID[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid actor id: "+err.Error())
	}
	requestID, err := kernel.UUIDFromBytes(newDelivery.RequestId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request id: "+err.Error())
	}

	lines := make([]commands.LineInput, len(newDelivery.Lines))
	for i, line := range newDelivery.Lines {
		input := commands.LineInput{Quantity: line.Quantity}
		if line.ProductId != nil {
			productID, idErr := kernel.UUIDFromBytes(line.ProductId[:])
			if idErr != nil {
				return errorJSON(ctx, http.StatusBadRequest, "Invalid product id: "+idErr.Error())
			}
			input.ProductID = &productID
		}
		if line.KitId != nil {
			kitID, idErr := kernel.UUIDFromBytes(line.KitId[:])
			if idErr != nil {
				return errorJSON(ctx, http.StatusBadRequest, "Invalid kit id: "+idErr.Error())
			}
			input.KitID = &kitID
		}
		lines[i] = input
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, requestID, actorID, lines)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryCreated{Id: deliveryID.Bytes()})
}

// GetDelivery handles GET /api/v1/deliveries/{deliveryId} - returns the full
// delivery read model.
func (s *Server) GetDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery id: "+err.Error())
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery id: "+err.Error())
	}

	result, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(result))
}

// AuthorizeDelivery handles POST /api/v1/deliveries/{deliveryId}/authorize.
func (s *Server) AuthorizeDelivery(
	ctx echo.Context,
	deliveryId openapi_types.UUID,
	params servers.AuthorizeDeliveryParams,
) error {
	var body servers.AuthorizeDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	deliveryID, actorID, err := transitionIDs(deliveryId, params.XActorID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	var partialQuantities map[kernel.UUID]int
	if body.PartialQuantities != nil {
		partialQuantities = make(map[kernel.UUID]int, len(*body.PartialQuantities))
		for ref, quantity := range *body.PartialQuantities {
			refID, refErr := kernel.UUIDFromString(ref)
			if refErr != nil {
				return errorJSON(ctx, http.StatusBadRequest, "Invalid line reference: "+refErr.Error())
			}
			partialQuantities[refID] = quantity
		}
	}

	cmd, err := commands.NewAuthorizeDeliveryCommand(
		deliveryID, actorID, optionalValue(body.Notes), partialQuantities)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid authorization data: "+err.Error())
	}

	if handleErr := s.authorizeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveDeliveryAtWarehouse handles POST /api/v1/deliveries/{deliveryId}/receive-warehouse.
func (s *Server) ReceiveDeliveryAtWarehouse(
	ctx echo.Context,
	deliveryId openapi_types.UUID,
	params servers.ReceiveDeliveryAtWarehouseParams,
) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	deliveryID, actorID, err := transitionIDs(deliveryId, params.XActorID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewReceiveWarehouseCommand(deliveryID, actorID, optionalValue(body.Notes))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid reception data: "+err.Error())
	}

	if handleErr := s.receiveWarehouseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PrepareDelivery handles POST /api/v1/deliveries/{deliveryId}/prepare.
func (s *Server) PrepareDelivery(
	ctx echo.Context,
	deliveryId openapi_types.UUID,
	params servers.PrepareDeliveryParams,
) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	deliveryID, actorID, err := transitionIDs(deliveryId, params.XActorID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewPrepareDeliveryCommand(deliveryID, actorID, optionalValue(body.Notes))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid preparation data: "+err.Error())
	}

	if handleErr := s.prepareDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDeliveryReady handles POST /api/v1/deliveries/{deliveryId}/ready -
// allocates stock FEFO and marks the delivery ready.
func (s *Server) MarkDeliveryReady(
	ctx echo.Context,
	deliveryId openapi_types.UUID,
	params servers.MarkDeliveryReadyParams,
) error {
	deliveryID, actorID, err := transitionIDs(deliveryId, params.XActorID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewMarkReadyCommand(deliveryID, actorID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid data: "+err.Error())
	}

	if handleErr := s.markReadyHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/deliveries/{deliveryId}/deliver -
// records handover to the receiver.
func (s *Server) CompleteDelivery(
	ctx echo.Context,
	deliveryId openapi_types.UUID,
	params servers.CompleteDeliveryParams,
) error {
	var body servers.CompleteDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	deliveryID, actorID, err := transitionIDs(deliveryId, params.XActorID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(
		deliveryID, actorID, body.ReceiverName, body.ReceiverDocument, optionalValue(body.Notes))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid handover data: "+err.Error())
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/{deliveryId}/cancel.
func (s *Server) CancelDelivery(
	ctx echo.Context,
	deliveryId openapi_types.UUID,
	params servers.CancelDeliveryParams,
) error {
	var body servers.CancelDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	deliveryID, actorID, err := transitionIDs(deliveryId, params.XActorID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, actorID, body.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStockMovements handles GET /api/v1/stock/movements - lists the stock
// ledger with optional filters.
func (s *Server) GetStockMovements(ctx echo.Context, params servers.GetStockMovementsParams) error {
	var productID *kernel.UUID
	if params.ProductId != nil {
		id, err := kernel.UUIDFromBytes(params.ProductId[:])
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid product id: "+err.Error())
		}
		productID = &id
	}

	var movementType string
	if params.Type != nil {
		movementType = string(*params.Type)
	}

	query, err := queries.NewListStockMovementsQuery(productID, movementType, params.From, params.To)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid filter: "+err.Error())
	}

	result, err := s.listStockMovementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]servers.StockMovement, len(result.Movements))
	for i, movement := range result.Movements {
		response[i] = servers.StockMovement{
			Id:         movement.ID.Bytes(),
			ProductId:  movement.ProductID.Bytes(),
			LotId:      movement.LotID.Bytes(),
			Type:       servers.StockMovementType(movement.Type),
			Quantity:   movement.Quantity,
			Reason:     movement.Reason,
			Reference:  optionalID(movement.Reference),
			Actor:      movement.Actor.Bytes(),
			OccurredAt: movement.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// transitionIDs converts the wire identifiers of a workflow transition.
func transitionIDs(deliveryId, actorId openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	actorID, err := kernel.UUIDFromBytes(actorId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return deliveryID, actorID, nil
}

// domainError maps the error taxonomy onto HTTP statuses. Segregation and
// stock errors keep their full detail in the message.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, delivery.ErrSegregationViolated):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, stock.ErrInsufficientStock),
		errors.Is(err, commands.ErrRequestNotAcceptingDeliveries),
		errors.Is(err, commands.ErrRequestHasOpenDelivery),
		errors.Is(err, errs.ErrConflict):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func optionalValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// optionalID converts an optional kernel identifier to its wire form.
func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	wireID := id.Bytes()
	return &wireID
}

// optionalText converts an empty read-model string to an omitted field.
func optionalText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// toDeliveryResponse converts the delivery read model to its wire form.
func toDeliveryResponse(result queries.GetDeliveryQueryResponse) servers.Delivery {
	lines := make([]servers.DeliveryLine, len(result.Lines))
	for i, line := range result.Lines {
		draws := make([]servers.LotDraw, len(line.Draws))
		for j, draw := range line.Draws {
			draws[j] = servers.LotDraw{
				LotId:     draw.LotID.Bytes(),
				ProductId: draw.ProductID.Bytes(),
				Quantity:  draw.Quantity,
			}
		}
		lines[i] = servers.DeliveryLine{
			Id:                 line.ID.Bytes(),
			ProductId:          optionalID(line.ProductID),
			KitId:              optionalID(line.KitID),
			Quantity:           line.Quantity,
			AuthorizedQuantity: line.AuthorizedQuantity,
			Draws:              draws,
		}
	}

	history := make([]servers.HistoryEntry, len(result.History))
	for i, entry := range result.History {
		history[i] = servers.HistoryEntry{
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			Actor:      entry.Actor.Bytes(),
			Notes:      optionalText(entry.Notes),
			OccurredAt: entry.OccurredAt,
		}
	}

	return servers.Delivery{
		Id:                   result.ID.Bytes(),
		Code:                 result.Code,
		RequestId:            result.RequestID.Bytes(),
		Status:               servers.DeliveryStatus(result.Status),
		CreatedBy:            result.CreatedBy.Bytes(),
		AuthorizedBy:         optionalID(result.AuthorizedBy),
		WarehouseReceivedBy:  optionalID(result.WarehouseReceivedBy),
		PreparedBy:           optionalID(result.PreparedBy),
		DeliveredBy:          optionalID(result.DeliveredBy),
		PartialAuthorization: result.PartialAuthorization,
		ReceiverName:         optionalText(result.ReceiverName),
		ReceiverDocument:     optionalText(result.ReceiverDocument),
		CancelReason:         optionalText(result.CancelReason),
		CreatedAt:            result.CreatedAt,
		Version:              result.Version,
		Lines:                lines,
		History:              history,
	}
}
