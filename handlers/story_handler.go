package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
	application "github.com/tasfia236/TravelTourismServer/service"
)

type StoryHandler struct {
	service *application.StoryService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewStoryHandler(service *application.StoryService, tracer trace.Tracer, logger *logrus.Logger) *StoryHandler {
	return &StoryHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *StoryHandler) Init(router *mux.Router) {
	router.HandleFunc("/stories", handler.GetAll).Methods("GET")
	router.HandleFunc("/allstories", handler.GetAll).Methods("GET")
	router.HandleFunc("/story/{id}", handler.Get).Methods("GET")
}

func (handler *StoryHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "StoryHandler.GetAll")
	defer span.End()

	stories, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if stories == nil {
		stories = []*domain.Story{}
	}
	jsonResponse(stories, writer)
}

func (handler *StoryHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "StoryHandler.Get")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(mux.Vars(req)["id"])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, "Invalid story ID", http.StatusBadRequest)
		return
	}

	story, err := handler.service.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(story, writer)
}
