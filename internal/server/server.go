// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"health-calc/internal/config"
	"health-calc/internal/foods"
	"health-calc/internal/models"
)

var ServerInfo = protocol.Implementation{
	Name:    "health-calc",
	Version: "1.0.0",
}

type toolHandler func(*protocol.CallToolRequest) (*protocol.CallToolResult, error)

type CalcServer struct {
	httpServer *http.Server
	table      *foods.Table
	validate   *validator.Validate
	tools      map[string]toolHandler
	config     *config.Config
}

// NewCalcServer wires the calculator tools over the given food table.
func NewCalcServer(cfg *config.Config, table *foods.Table) (*CalcServer, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("food table is empty")
	}

	calcServer := &CalcServer{
		table:    table,
		validate: newValidator(),
		config:   cfg,
	}

	if err := calcServer.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", calcServer.handleHTTP)

	calcServer.httpServer = &http.Server{
		Addr:    cfg.Addr(),
		Handler: mux,
	}

	return calcServer, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their argument names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *CalcServer) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *CalcServer) handleHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Printf("[%s] invalid JSON: %v", requestID, err)
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	handler, ok := s.tools[request.Name]
	if !ok {
		log.Printf("[%s] unknown tool %q", requestID, request.Name)
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	result, err := handler(&request)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		log.Printf("[%s] %s failed (%d): %v", requestID, request.Name, status, err)
		http.Error(w, err.Error(), status)
		return
	}
	log.Printf("[%s] %s ok", requestID, request.Name)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", requestID)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("[%s] failed to encode response: %v", requestID, err)
	}
}

func (s *CalcServer) Start(ctx context.Context) error {
	log.Printf("Starting %s %s on %s", ServerInfo.Name, ServerInfo.Version, s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *CalcServer) Stop() error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(context.Background())
	}
	return nil
}

func (s *CalcServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
