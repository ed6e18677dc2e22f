package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/NoSuchObjectException/4610-final-project/services"
)

// Command is the internal representation every inbound request is decoded
// to, whichever convention named the operation: a selector plus the raw
// payload.
type Command struct {
	Selector string
	Payload  map[string]any
}

// operation binds a selector to its required top-level parameters and its
// handler.
type operation struct {
	required []string
	handle   func(ctx context.Context, payload map[string]any) response
}

// dispatcher is the shared routing core. The two conventions differ only
// in how the Command is decoded from the HTTP request; dispatch itself is
// written once.
type dispatcher struct {
	kind string // "path" or "action", named in the unknown-selector message
	ops  map[string]operation
	log  *logrus.Logger
}

func (d *dispatcher) dispatch(ctx context.Context, cmd Command) (resp response) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithFields(logrus.Fields{"selector": cmd.Selector, "panic": r}).
				Error("panic while handling request")
			resp = failure(d.log, cmd.Selector, fmt.Errorf("panic: %v", r), nil)
		}
	}()

	op, known := d.ops[cmd.Selector]
	if !known {
		return clientError(fmt.Sprintf("Unknown %s: %s", d.kind, cmd.Selector))
	}

	if missing := missingParams(cmd.Payload, op.required); len(missing) > 0 {
		if len(missing) == 1 {
			return clientError(missing[0] + " is required")
		}
		return response{status: http.StatusBadRequest, body: map[string]any{
			"message":         "Missing required fields",
			"fields":          missing,
			"received_fields": paramNames(cmd.Payload),
		}}
	}

	return op.handle(ctx, cmd.Payload)
}

// pathHandler decodes the path-based convention: the trailing path
// segment names the operation, the body is an optional JSON object.
func (d *dispatcher) pathHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			write(w, ok(map[string]any{"message": "OK"}))
			return
		}

		payload, errResp := decodePayload(r, false)
		if errResp != nil {
			write(w, *errResp)
			return
		}

		selector := trailingSegment(r.URL.Path)
		write(w, d.dispatch(r.Context(), Command{Selector: selector, Payload: payload}))
	}
}

// actionHandler decodes the action-field convention: the payload carries
// an explicit action string.
func (d *dispatcher) actionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			write(w, ok(map[string]any{"message": "OK"}))
			return
		}

		payload, errResp := decodePayload(r, true)
		if errResp != nil {
			write(w, *errResp)
			return
		}

		action, _ := payload["action"].(string)
		if action == "" {
			write(w, clientError("Action is required"))
			return
		}
		write(w, d.dispatch(r.Context(), Command{Selector: action, Payload: payload}))
	}
}

func decodePayload(r *http.Request, bodyRequired bool) (map[string]any, *response) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		resp := clientError("Error reading request body")
		return nil, &resp
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		if bodyRequired {
			resp := clientError("Request body is required")
			return nil, &resp
		}
		return map[string]any{}, nil
	}

	payload := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		resp := clientError("Invalid JSON in request body")
		return nil, &resp
	}
	return payload, nil
}

// failure maps a service error to the response envelope: validation
// problems to 400, missing entities to 404, everything else to a 500
// carrying diagnostics for operators.
func failure(log *logrus.Logger, selector string, err error, extra map[string]any) response {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		body := map[string]any{"message": vErr.Message}
		if len(vErr.Fields) > 0 {
			body["fields"] = vErr.Fields
		}
		if len(vErr.Received) > 0 {
			body["received_fields"] = vErr.Received
		}
		return response{status: http.StatusBadRequest, body: body}
	}

	var nfErr *services.NotFoundError
	if errors.As(err, &nfErr) {
		return notFound(nfErr.Error())
	}

	fields := logrus.Fields{"selector": selector, "error": err.Error()}
	for k, v := range extra {
		fields[k] = v
	}
	log.WithFields(fields).Error("request failed")

	body := map[string]any{
		"message": "Error processing request",
		"error":   err.Error(),
		"type":    errorType(err),
		"action":  selector,
	}
	for k, v := range extra {
		body[k] = v
	}
	return response{status: http.StatusInternalServerError, body: body}
}

func errorType(err error) string {
	name := fmt.Sprintf("%T", err)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}

func missingParams(payload map[string]any, required []string) []string {
	var missing []string
	for _, name := range required {
		v, present := payload[name]
		if !present || v == nil {
			missing = append(missing, name)
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func paramNames(payload map[string]any) []string {
	names := make([]string, 0, len(payload))
	for k := range payload {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func trailingSegment(urlPath string) string {
	trimmed := strings.TrimSuffix(urlPath, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

func nestedObject(payload map[string]any, field string) map[string]any {
	obj, _ := payload[field].(map[string]any)
	return obj
}
