package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/authorization"
	"github.com/tasfia236/TravelTourismServer/domain"
)

type AuthHandler struct {
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewAuthHandler(tracer trace.Tracer, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		tracer: tracer,
		logger: logger,
	}
}

func (handler *AuthHandler) Init(router *mux.Router) {
	router.HandleFunc("/jwt", handler.IssueToken).Methods("POST")
	router.HandleFunc("/", handler.Welcome).Methods("GET")
}

// IssueToken signs the caller-supplied identity into a short-lived token.
// The claims are not checked against the users collection here; protected
// routes do their own role lookup.
func (handler *AuthHandler) IssueToken(writer http.ResponseWriter, req *http.Request) {
	_, span := handler.tracer.Start(req.Context(), "AuthHandler.IssueToken")
	defer span.End()

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	claims := &domain.Claims{
		Email:     payload.Email,
		ExpiresAt: time.Now().Add(authorization.TokenTTL),
	}

	token, err := authorization.GenerateJWT(claims)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.WithError(err).Error("error generating token")
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(map[string]string{"token": token}, writer)
}

func (handler *AuthHandler) Welcome(writer http.ResponseWriter, req *http.Request) {
	_, _ = writer.Write([]byte("Welcome to Our Tourist Guide!"))
}
