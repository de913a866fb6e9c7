package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/authorization"
	"github.com/tasfia236/TravelTourismServer/domain"
	application "github.com/tasfia236/TravelTourismServer/service"
)

type BookingHandler struct {
	service *application.BookingService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewBookingHandler(service *application.BookingService, tracer trace.Tracer, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *BookingHandler) Init(router *mux.Router, gate *authorization.AccessControl) {
	router.HandleFunc("/booking", handler.GetAll).Methods("GET")
	router.HandleFunc("/assigned", handler.Assigned).Methods("GET")
	router.HandleFunc("/booking/{email}", handler.ByTourist).Methods("GET")
	router.HandleFunc("/booking", handler.Create).Methods("POST")
	router.Handle("/users/bookingAccept/{id}", gate.VerifyToken(gate.RequireTourGuide(http.HandlerFunc(handler.Accept)))).Methods("PATCH")
	router.Handle("/users/bookingReject/{id}", gate.VerifyToken(gate.RequireTourGuide(http.HandlerFunc(handler.Reject)))).Methods("PATCH")
}

func (handler *BookingHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetAll")
	defer span.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	jsonResponse(bookings, writer)
}

// Assigned lists the bookings assigned to a guide email.
func (handler *BookingHandler) Assigned(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Assigned")
	defer span.End()

	email := req.URL.Query().Get("email")
	bookings, err := handler.service.FindByGuideEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	jsonResponse(bookings, writer)
}

func (handler *BookingHandler) ByTourist(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.ByTourist")
	defer span.End()

	email := mux.Vars(req)["email"]
	bookings, err := handler.service.FindByTouristEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	jsonResponse(bookings, writer)
}

func (handler *BookingHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Create")
	defer span.End()

	var booking domain.Booking
	if err := booking.FromJSON(req.Body); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Create(ctx, &booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(insertResult(result), writer)
}

func (handler *BookingHandler) Accept(writer http.ResponseWriter, req *http.Request) {
	handler.decide(writer, req, domain.BookingAccepted, "BookingHandler.Accept")
}

func (handler *BookingHandler) Reject(writer http.ResponseWriter, req *http.Request) {
	handler.decide(writer, req, domain.BookingRejected, "BookingHandler.Reject")
}

func (handler *BookingHandler) decide(writer http.ResponseWriter, req *http.Request, status domain.BookingStatus, spanName string) {
	ctx, span := handler.tracer.Start(req.Context(), spanName)
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	result, err := handler.service.SetStatus(ctx, id, status)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(updateResult(result), writer)
}
