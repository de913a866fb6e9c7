package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
	errs "github.com/tasfia236/TravelTourismServer/errors"
	application "github.com/tasfia236/TravelTourismServer/service"
)

type RequestHandler struct {
	service *application.GuideRequestService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewRequestHandler(service *application.GuideRequestService, tracer trace.Tracer, logger *logrus.Logger) *RequestHandler {
	return &RequestHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *RequestHandler) Init(router *mux.Router) {
	router.HandleFunc("/request-guide", handler.GetAll).Methods("GET")
	router.HandleFunc("/request-guide", handler.Submit).Methods("POST")
}

func (handler *RequestHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RequestHandler.GetAll")
	defer span.End()

	requests, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if requests == nil {
		requests = []*domain.GuideRequest{}
	}
	jsonResponse(requests, writer)
}

func (handler *RequestHandler) Submit(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RequestHandler.Submit")
	defer span.End()

	var request domain.GuideRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Submit(ctx, &request)
	if err != nil {
		switch err.Error() {
		case errs.DuplicateRequestError, errs.InvalidRequestFormatError:
			messageResponse(writer, http.StatusBadRequest, err.Error())
		default:
			span.SetStatus(codes.Error, err.Error())
			http.Error(writer, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	jsonResponse(insertResult(result), writer)
}
