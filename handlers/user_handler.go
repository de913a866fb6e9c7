package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/authorization"
	"github.com/tasfia236/TravelTourismServer/domain"
	errs "github.com/tasfia236/TravelTourismServer/errors"
	application "github.com/tasfia236/TravelTourismServer/service"
)

type UserHandler struct {
	service *application.UserService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewUserHandler(service *application.UserService, tracer trace.Tracer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *UserHandler) Init(router *mux.Router, gate *authorization.AccessControl) {
	router.Handle("/users", gate.VerifyToken(gate.RequireAdmin(http.HandlerFunc(handler.GetAll)))).Methods("GET")
	router.Handle("/users/admin/{email}", gate.VerifyToken(http.HandlerFunc(handler.AdminStatus))).Methods("GET")
	router.Handle("/users/tourGuide/{email}", gate.VerifyToken(http.HandlerFunc(handler.TourGuideStatus))).Methods("GET")
	router.HandleFunc("/user", handler.Find).Methods("GET")
	router.HandleFunc("/guides/{role}", handler.Guides).Methods("GET")
	router.HandleFunc("/users", handler.Create).Methods("POST")
	// Self-service profile upsert is intentionally ungated, matching the
	// surface this API replaces.
	router.HandleFunc("/users/tourGuide/{id}", handler.UpsertProfile).Methods("PATCH")
	router.Handle("/users/admin/{id}", gate.VerifyToken(gate.RequireAdmin(http.HandlerFunc(handler.PromoteAdmin)))).Methods("PATCH")
	router.Handle("/users/guide/{id}", gate.VerifyToken(gate.RequireAdmin(http.HandlerFunc(handler.PromoteGuide)))).Methods("PATCH")
	router.Handle("/users/{id}", gate.VerifyToken(gate.RequireAdmin(http.HandlerFunc(handler.Delete)))).Methods("DELETE")
}

func (handler *UserHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetAll")
	defer span.End()

	users, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	jsonResponse(users, writer)
}

func (handler *UserHandler) AdminStatus(writer http.ResponseWriter, req *http.Request) {
	handler.roleStatus(writer, req, domain.RoleAdmin, "admin", "UserHandler.AdminStatus")
}

func (handler *UserHandler) TourGuideStatus(writer http.ResponseWriter, req *http.Request) {
	handler.roleStatus(writer, req, domain.RoleTourGuide, "tourGuide", "UserHandler.TourGuideStatus")
}

// roleStatus answers "does this email hold this role", and only for the
// email the token was issued to, so one user cannot probe another's role.
func (handler *UserHandler) roleStatus(writer http.ResponseWriter, req *http.Request, role domain.Role, field, spanName string) {
	ctx, span := handler.tracer.Start(req.Context(), spanName)
	defer span.End()

	email := mux.Vars(req)["email"]

	claims, ok := authorization.ClaimsFromContext(ctx)
	if !ok || email != claims.Email {
		messageResponse(writer, http.StatusForbidden, errs.ForbiddenError)
		return
	}

	user, err := handler.service.GetByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	holds := user != nil && user.Role == role
	jsonResponse(map[string]bool{field: holds}, writer)
}

func (handler *UserHandler) Find(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Find")
	defer span.End()

	email := req.URL.Query().Get("email")
	users, err := handler.service.FindByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	jsonResponse(users, writer)
}

func (handler *UserHandler) Guides(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Guides")
	defer span.End()

	role := domain.Role(mux.Vars(req)["role"])
	users, err := handler.service.FindByRole(ctx, role)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	jsonResponse(users, writer)
}

func (handler *UserHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Create")
	defer span.End()

	var user domain.User
	if err := user.FromJSON(req.Body); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	if err := user.Validate(); err != nil {
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Create(ctx, &user)
	if err != nil {
		if err.Error() == errs.UserExistsError {
			jsonResponse(insertResponse{Message: errs.UserExistsError, InsertedID: nil}, writer)
			return
		}
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(insertResult(result), writer)
}

func (handler *UserHandler) UpsertProfile(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.UpsertProfile")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var update domain.ProfileUpdate
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.UpdateProfile(ctx, id, &update)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(updateResult(result), writer)
}

func (handler *UserHandler) PromoteAdmin(writer http.ResponseWriter, req *http.Request) {
	handler.promote(writer, req, domain.RoleAdmin, "UserHandler.PromoteAdmin")
}

func (handler *UserHandler) PromoteGuide(writer http.ResponseWriter, req *http.Request) {
	handler.promote(writer, req, domain.RoleTourGuide, "UserHandler.PromoteGuide")
}

func (handler *UserHandler) promote(writer http.ResponseWriter, req *http.Request, role domain.Role, spanName string) {
	ctx, span := handler.tracer.Start(req.Context(), spanName)
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, "Invalid user ID", http.StatusBadRequest)
		return
	}

	result, err := handler.service.SetRole(ctx, id, role)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(updateResult(result), writer)
}

func (handler *UserHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Delete")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, "Invalid user ID", http.StatusBadRequest)
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
