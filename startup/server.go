package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tasfia236/TravelTourismServer/authorization"
	"github.com/tasfia236/TravelTourismServer/handlers"
	application "github.com/tasfia236/TravelTourismServer/service"
	"github.com/tasfia236/TravelTourismServer/startup/config"
	store2 "github.com/tasfia236/TravelTourismServer/store"
	"github.com/tasfia236/TravelTourismServer/utils"
)

type Server struct {
	config *config.Config
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func (server *Server) Start() {
	logger := server.initLogger()
	tracer := server.initTracer(logger)

	mongoClient := server.initMongoClient(logger)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.WithError(err).Error("error disconnecting from MongoDB")
		}
	}(mongoClient, context.Background())

	redisClient, err := store2.GetRedisClient(server.config.RequestCacheHost, server.config.RequestCachePort)
	if err != nil {
		logger.Fatal(err)
	}

	userStore := store2.NewUserMongoDBStore(mongoClient, tracer)
	spotStore := store2.NewSpotMongoDBStore(mongoClient, tracer)
	storyStore := store2.NewStoryMongoDBStore(mongoClient, tracer)
	bookingStore := store2.NewBookingMongoDBStore(mongoClient, tracer)
	requestStore := store2.NewRequestMongoDBStore(mongoClient, tracer)
	requestCache := store2.NewRequestRedisCache(redisClient, tracer)

	enforcer, err := authorization.NewEnforcer(server.config.CasbinModel, server.config.CasbinPolicy)
	if err != nil {
		logger.Fatal(err)
	}
	gate := authorization.NewAccessControl(userStore, enforcer, tracer, logger)

	var mailer *utils.Mailer
	if server.config.SMTPHost != "" {
		mailer = utils.NewMailer(server.config.SMTPHost, server.config.SMTPPort, server.config.SMTPUser, server.config.SMTPPass, server.config.SMTPFrom)
	}

	userService := application.NewUserService(userStore, tracer)
	spotService := application.NewSpotService(spotStore, tracer)
	storyService := application.NewStoryService(storyStore, tracer)
	bookingService := application.NewBookingService(bookingStore, mailer, tracer, logger)
	requestService := application.NewGuideRequestService(requestStore, requestCache, tracer, logger)

	authHandler := handlers.NewAuthHandler(tracer, logger)
	userHandler := handlers.NewUserHandler(userService, tracer, logger)
	spotHandler := handlers.NewSpotHandler(spotService, tracer, logger)
	storyHandler := handlers.NewStoryHandler(storyService, tracer, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, tracer, logger)
	requestHandler := handlers.NewRequestHandler(requestService, tracer, logger)

	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	router.Use(handlers.ExtractTraceInfoMiddleware)

	authHandler.Init(router)
	userHandler.Init(router, gate)
	spotHandler.Init(router)
	storyHandler.Init(router)
	bookingHandler.Init(router, gate)
	requestHandler.Init(router)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE"}),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: cors(router),
	}

	wait := time.Second * 15
	go func() {
		logger.Infof("listening on port %s", server.config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("error shutting down server: %s", err)
	}
	logger.Info("server gracefully stopped")
}

func (server *Server) initLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	lumberjackLog := &lumberjack.Logger{
		Filename:  server.config.LogFile,
		MaxSize:   1,
		LocalTime: true,
	}
	logger.SetOutput(lumberjackLog)

	return logger
}

func (server *Server) initTracer(logger *logrus.Logger) trace.Tracer {
	tracerProvider, err := NewTracerProvider(server.config.ServiceName, server.config.JaegerAddress)
	if err != nil {
		logger.WithError(err).Warn("tracing disabled: jaeger exporter failed to initialize")
		return trace.NewNoopTracerProvider().Tracer(server.config.ServiceName)
	}
	return tracerProvider.Tracer(server.config.ServiceName)
}

func (server *Server) initMongoClient(logger *logrus.Logger) *mongo.Client {
	client, err := store2.GetClient(server.config.TouristDBHost, server.config.TouristDBPort)
	if err != nil {
		logger.Fatal(err)
	}
	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		logger.Fatal(err)
	}
	return client
}

func NewTracerProvider(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize exporter due: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		log.Println("Method [", h.Method, "] - Hit path :", h.URL.Path)

		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")

		next.ServeHTTP(rw, h)
	})
}
