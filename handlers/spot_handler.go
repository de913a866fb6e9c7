package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
	application "github.com/tasfia236/TravelTourismServer/service"
)

type SpotHandler struct {
	service *application.SpotService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewSpotHandler(service *application.SpotService, tracer trace.Tracer, logger *logrus.Logger) *SpotHandler {
	return &SpotHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *SpotHandler) Init(router *mux.Router) {
	router.HandleFunc("/spots", handler.GetAll).Methods("GET")
	router.HandleFunc("/allspots", handler.GetAll).Methods("GET")
	router.HandleFunc("/spots", handler.Create).Methods("POST")
	router.HandleFunc("/spots/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/wishlist/{email}", handler.Wishlisted).Methods("GET")
	router.HandleFunc("/wishspots/{id}", handler.ToggleWish).Methods("PATCH")
	router.HandleFunc("/wish/{id}", handler.Delete).Methods("DELETE")
}

func (handler *SpotHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SpotHandler.GetAll")
	defer span.End()

	spots, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if spots == nil {
		spots = []*domain.Spot{}
	}
	jsonResponse(spots, writer)
}

func (handler *SpotHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SpotHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, "Invalid spot ID", http.StatusBadRequest)
		return
	}

	spot, err := handler.service.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	// An absent spot serializes to null, matching the empty-success
	// contract of the original API.
	jsonResponse(spot, writer)
}

func (handler *SpotHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SpotHandler.Create")
	defer span.End()

	var spot domain.Spot
	if err := spot.FromJSON(req.Body); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Create(ctx, &spot)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(insertResult(result), writer)
}

func (handler *SpotHandler) Wishlisted(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SpotHandler.Wishlisted")
	defer span.End()

	email := mux.Vars(req)["email"]
	spots, err := handler.service.Wishlisted(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if spots == nil {
		spots = []*domain.Spot{}
	}
	jsonResponse(spots, writer)
}

func (handler *SpotHandler) ToggleWish(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SpotHandler.ToggleWish")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, "Invalid spot ID", http.StatusBadRequest)
		return
	}

	var update domain.WishUpdate
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.ToggleWish(ctx, id, &update)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(updateResult(result), writer)
}

func (handler *SpotHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SpotHandler.Delete")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, "Invalid spot ID", http.StatusBadRequest)
		return
	}

	result, err := handler.service.Delete(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(deleteResult(result), writer)
}
