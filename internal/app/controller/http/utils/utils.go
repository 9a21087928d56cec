package httputils

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second
)

const (
	MsgInternalError = "internal server error"
)

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	out, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("error while marshalling response payload", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}
