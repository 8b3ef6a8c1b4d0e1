// Package bridge serves a small HTTP contract: a single POST endpoint
// multiplexing on a "what" string. It turns a pkg/transact.Session into
// a JSON-reachable service, the same way a tag-multiplexed handler turns
// a UART connection into a request/reply-addressable one over another
// transport.
package bridge

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/openautomato/automato/pkg/automato"
	"github.com/openautomato/automato/pkg/automatoerr"
	"github.com/openautomato/automato/pkg/telemetry"
	"github.com/openautomato/automato/pkg/transact"
)

// defaultTimeout mirrors the 2420ms wait the original interfaces.rs used
// between writing a request and giving up on a reply.
const defaultTimeout = 2420 * time.Millisecond

// publicRequest is the envelope every POST /public body is parsed as,
// mirroring messages.rs's PublicMessage.
type publicRequest struct {
	What string          `json:"what"`
	Data json.RawMessage `json:"data,omitempty"`
}

// automatoMsgData is the "data" payload of a What: "AutomatoMsg" request.
type automatoMsgData struct {
	ID      byte            `json:"id"`
	Message json.RawMessage `json:"message"`
}

// publicResponse is the envelope every response is wrapped in, mirroring
// messages.rs's ServerResponse.
type publicResponse struct {
	What    string      `json:"what"`
	Content interface{} `json:"content"`
}

// automatoMsgContent is the "content" of a successful AutomatoMsg reply.
type automatoMsgContent struct {
	ID      byte            `json:"id"`
	Message json.RawMessage `json:"message"`
}

// Server holds the state one HTTP bridge instance needs to service
// requests: the serialized transaction session, the known automato ids,
// and an optional telemetry sink.
type Server struct {
	Session     *transact.Session
	AutomatoIDs []byte
	Telemetry   *telemetry.Sink
	Timeout     time.Duration
}

// New constructs a Server with defaultTimeout applied.
func New(session *transact.Session, automatoIDs []byte, sink *telemetry.Sink) *Server {
	return &Server{Session: session, AutomatoIDs: automatoIDs, Telemetry: sink, Timeout: defaultTimeout}
}

// Handler returns the http.Handler implementing POST /public.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/public", s.handlePublic)
	return mux
}

func (s *Server) handlePublic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req publicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, publicResponse{What: "bad request", Content: err.Error()})
		return
	}

	switch req.What {
	case "GetAutomatoList":
		// automato.ByteList marshals as a JSON array of integers; a plain
		// []byte would marshal as a base64 string instead.
		writeJSON(w, http.StatusOK, publicResponse{What: "automatos", Content: automato.ByteList(s.AutomatoIDs)})
	case "AutomatoMsg":
		s.handleAutomatoMsg(w, req.Data)
	default:
		writeJSON(w, http.StatusBadRequest, publicResponse{What: "unknown request", Content: req.What})
	}
}

func (s *Server) handleAutomatoMsg(w http.ResponseWriter, data json.RawMessage) {
	var msg automatoMsgData
	if err := json.Unmarshal(data, &msg); err != nil {
		writeJSON(w, http.StatusBadRequest, publicResponse{What: "bad request", Content: err.Error()})
		return
	}

	req, err := automato.DecodeJSON(msg.Message)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, publicResponse{What: "bad request", Content: err.Error()})
		return
	}

	_, reply, err := s.Session.Transact(msg.ID, req, s.Timeout)
	if err != nil {
		if ae, ok := err.(*automatoerr.Error); ok {
			writeJSON(w, http.StatusOK, publicResponse{What: "serial error", Content: ae})
			return
		}
		writeJSON(w, http.StatusInternalServerError, publicResponse{What: "serial error", Content: err.Error()})
		return
	}

	if s.Telemetry != nil {
		if pubErr := s.Telemetry.PublishReply(msg.ID, reply); pubErr != nil {
			log.Printf("bridge: telemetry publish failed: %v", pubErr)
		}
	}

	encoded, err := automato.EncodeJSON(reply)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, publicResponse{What: "serial error", Content: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, publicResponse{
		What:    "automatomsg",
		Content: automatoMsgContent{ID: msg.ID, Message: encoded},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("bridge: write response: %v", err)
	}
}
