package controllers

import (
	"encoding/json"
	"log"
	"net/http"
)

// Fixed header set carried by every response envelope.
var responseHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
	"Access-Control-Allow-Methods": "OPTIONS,POST,GET",
	"Content-Type":                 "application/json",
}

// response is the envelope every operation produces: a status code plus a
// JSON-encodable body. The shape is the same regardless of outcome.
type response struct {
	status int
	body   any
}

func ok(body any) response {
	return response{status: http.StatusOK, body: body}
}

func clientError(message string) response {
	return response{status: http.StatusBadRequest, body: map[string]any{"message": message}}
}

func notFound(message string) response {
	return response{status: http.StatusNotFound, body: map[string]any{"message": message}}
}

func write(w http.ResponseWriter, resp response) {
	for k, v := range responseHeaders {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.status)
	if err := json.NewEncoder(w).Encode(resp.body); err != nil {
		log.Printf("Error encoding response body: %v", err)
	}
}
