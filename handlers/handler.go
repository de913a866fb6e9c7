package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Response shapes mirror the raw mongo results the original API exposed.
type insertResponse struct {
	Message    string      `json:"message,omitempty"`
	InsertedID interface{} `json:"insertedId"`
}

type updateResponse struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

func insertResult(result *mongo.InsertOneResult) insertResponse {
	return insertResponse{InsertedID: result.InsertedID}
}

func updateResult(result *mongo.UpdateResult) updateResponse {
	return updateResponse{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}
}

func deleteResult(result *mongo.DeleteResult) deleteResponse {
	return deleteResponse{DeletedCount: result.DeletedCount}
}

func jsonResponse(payload interface{}, writer http.ResponseWriter) {
	js, err := json.Marshal(payload)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = writer.Write(js)
}

func messageResponse(writer http.ResponseWriter, status int, message string) {
	writer.WriteHeader(status)
	jsonResponse(map[string]string{"message": message}, writer)
}

func ExtractTraceInfoMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
