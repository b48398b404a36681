package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/budget-dashboard/internal/logging"
)

type connectionState interface {
	IsConnected() bool
}

// Response reports whether the service is up and whether the database has been reached yet.
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	Connection connectionState
}

func NewHandler(conn connectionState) Handler {
	return Handler{Connection: conn}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	resp := Response{Status: "ok", Database: "disconnected"}
	if h.Connection != nil && h.Connection.IsConnected() {
		resp.Database = "connected"
	}
	logData.AddData("database", resp.Database)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}
