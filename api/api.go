package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// QueryParams covers every read endpoint; pointer fields distinguish "absent"
// from zero.
type QueryParams struct {
	StartBlock *uint64 `schema:"start_block"`
	EndBlock   *uint64 `schema:"end_block"`
	StartDate  string  `schema:"start_date"`
	Limit      *int    `schema:"limit"`
	Block      *uint64 `schema:"block"`
	Date       string  `schema:"date"`
}

type Meta struct {
	ChainId      uint64 `json:"chain_id"`
	Address      string `json:"address,omitempty"`
	StartBlock   uint64 `json:"start_block,omitempty"`
	EndBlock     uint64 `json:"end_block,omitempty"`
	Count        int    `json:"count"`
	Pages        int    `json:"pages,omitempty"`
	ReachedLimit bool   `json:"reached_limit,omitempty"`
	Warning      string `json:"warning,omitempty"`
}

type QueryResponse struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

func writeError(c *gin.Context, message string, code int) {
	resp := Error{
		Code:    code,
		Message: message,
	}
	c.JSON(code, resp)
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadRequest)
	}
	BadGatewayErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadGateway)
	}
	InternalErrorHandler = func(c *gin.Context) {
		writeError(c, "An unexpected error occurred.", http.StatusInternalServerError)
	}
	UnauthorizedErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusUnauthorized)
	}
)

func ParseQueryParams(r *http.Request) (QueryParams, error) {
	var params QueryParams
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	err := decoder.Decode(&params, r.URL.Query())
	if err != nil {
		log.Error().Err(err).Msg("Error parsing query params")
		return QueryParams{}, err
	}
	return params, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// ParseDate accepts RFC3339 or the common date / date-time forms, in UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
