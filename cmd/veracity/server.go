// cmd/veracity/server.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Server exposes the analysis engine over HTTP and pushes completed results
// to websocket subscribers.
type Server struct {
	config    *Config
	analyzer  *Analyzer
	extractor *Extractor
	history   *HistoryStore
	notifier  *Notifier
	reviewer  *Reviewer

	httpServer *http.Server
	upgrader   websocket.Upgrader

	clientsMutex sync.Mutex
	clients      map[*websocket.Conn]bool
}

// NewServer wires the HTTP layer around the engine.
func NewServer(config *Config, analyzer *Analyzer, extractor *Extractor, history *HistoryStore, notifier *Notifier, reviewer *Reviewer) *Server {
	s := &Server{
		config:    config,
		analyzer:  analyzer,
		extractor: extractor,
		history:   history,
		notifier:  notifier,
		reviewer:  reviewer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	api.HandleFunc("/analyses", s.handleListAnalyses).Methods("GET")
	api.HandleFunc("/analyses/{id}", s.handleGetAnalysis).Methods("GET")
	api.HandleFunc("/reputation/{domain}", s.handleReputation).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/errors", s.handleErrors).Methods("GET")
	api.HandleFunc("/ws", s.handleWebSocket)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", config.ListenPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	Log().Info("HTTP server listening on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains connections and closes websocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.clientsMutex.Lock()
	for client := range s.clients {
		client.Close()
	}
	s.clients = make(map[*websocket.Conn]bool)
	s.clientsMutex.Unlock()

	return s.httpServer.Shutdown(ctx)
}

// handleAnalyze runs the full pipeline on a submitted item.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.IsEmpty() {
		respondWithError(w, http.StatusBadRequest, "Provide at least one of title, content or sourceUrl")
		return
	}

	result := s.runAnalysis(r.Context(), input)
	respondWithJSON(w, http.StatusOK, result)
}

// runAnalysis fetches missing text, scores the item, records the result and
// fans it out to the optional integrations. Shared with the watchlist path.
func (s *Server) runAnalysis(ctx context.Context, input AnalysisInput) *AnalysisResult {
	title := input.Title
	content := input.Content
	domain := DomainFromURL(input.SourceURL)

	if input.SourceURL != "" && content == "" {
		fetchedTitle, fetchedContent, err := s.extractor.Extract(ctx, input.SourceURL)
		if err != nil {
			RecordError("extractor", SeverityWarning, err)
		} else {
			if title == "" {
				title = fetchedTitle
			}
			content = fetchedContent
		}
	}

	result := s.analyzer.Analyze(title, content, domain)
	result.SourceURL = input.SourceURL

	if s.reviewer != nil {
		if review, err := s.reviewer.Review(ctx, result.Title, content); err != nil {
			RecordError("reviewer", SeverityWarning, err)
		} else {
			result.AIReview = review
		}
	}

	s.history.Add(result)
	IncrementAnalysisCount()

	if err := SaveAnalysisToDB(result); err != nil {
		RecordError("database", SeverityError, err)
	}
	if s.notifier != nil && result.VerificationStatus == StatusFake {
		if err := s.notifier.AlertFakeVerdict(result); err != nil {
			RecordError("notifier", SeverityWarning, err)
		}
	}

	s.notifyWebSocketClients("analysis_completed", result)
	return result
}

// handleListAnalyses returns recent results, newest first. The limit query
// parameter defaults to 50.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	respondWithJSON(w, http.StatusOK, s.history.Recent(limit))
}

// handleGetAnalysis returns one result by id.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result, ok := s.history.Get(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Analysis not found")
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// handleReputation returns the credibility record for a domain without
// running an analysis.
func (s *Server) handleReputation(w http.ResponseWriter, r *http.Request) {
	domain := NormalizeDomain(mux.Vars(r)["domain"])
	respondWithJSON(w, http.StatusOK, s.analyzer.resolver.Resolve(domain))
}

// handleHealth reports liveness and the runtime counters.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snapshot := SnapshotState()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": VERSION,
		"state":   snapshot,
		"history": s.history.Len(),
	})
}

// handleErrors returns recent recorded errors for operators.
func (s *Server) handleErrors(w http.ResponseWriter, r *http.Request) {
	count := 25
	if raw := r.URL.Query().Get("count"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			count = parsed
		}
	}
	respondWithJSON(w, http.StatusOK, errorBuffer.GetRecent(count))
}

// handleWebSocket upgrades the connection and registers the client for
// analysis broadcasts.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		RecordError("websocket", SeverityWarning, err)
		return
	}

	s.clientsMutex.Lock()
	s.clients[conn] = true
	s.clientsMutex.Unlock()

	Log().Debug("WebSocket client connected: %s", conn.RemoteAddr())

	// Drain reads so we notice disconnects; clients only receive.
	go func() {
		defer func() {
			s.clientsMutex.Lock()
			delete(s.clients, conn)
			s.clientsMutex.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// notifyWebSocketClients broadcasts an event to all connected clients,
// dropping clients whose writes fail.
func (s *Server) notifyWebSocketClients(event string, payload interface{}) {
	message, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"payload": payload,
		"time":    time.Now().UTC(),
	})
	if err != nil {
		return
	}

	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	for client := range s.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			client.Close()
			delete(s.clients, client)
		}
	}
}

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error marshaling response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError writes an error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
