package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagaspn/navmerge/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, data interface{}) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
	return nil
}

func errorMessage(w http.ResponseWriter, status int, message interface{}) {
	if err := writeJSON(w, status, errorResponse{Error: message}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func badRequestResponse(w http.ResponseWriter, err error) {
	errorMessage(w, http.StatusBadRequest, err.Error())
}

func serverErrorResponse(w http.ResponseWriter, log *zap.Logger, err error) {
	log.Error("internal server error", zap.Error(err))
	errorMessage(w, http.StatusInternalServerError,
		"the server encountered a problem and could not process your request")
}

func errorStatusResponse(w http.ResponseWriter, log *zap.Logger, err error) {
	status := getStatusCode(err)
	if status == http.StatusInternalServerError {
		serverErrorResponse(w, log, err)
		return
	}
	errorMessage(w, status, err.Error())
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var wrapped *util.Error
	if errors.As(err, &wrapped) {
		err = wrapped.Code()
	}
	switch err {
	case util.ErrNotFound:
		return http.StatusNotFound
	case util.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
