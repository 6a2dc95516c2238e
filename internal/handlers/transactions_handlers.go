package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chainlens/explorer/api"
	"github.com/chainlens/explorer/internal/aggregator"
	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/metrics"
)

// @Summary Get account transactions
// @Description Retrieve the transaction history of an address within a block range
// @Tags transactions
// @Produce json
// @Security BasicAuth
// @Param address path string true "Account address"
// @Param start_block query int false "First block of the range"
// @Param end_block query int false "Last block of the range"
// @Param start_date query string false "Date resolved to the first block of the range"
// @Param limit query int false "Maximum number of records to return"
// @Success 200 {object} api.QueryResponse{data=[]common.TransactionRecord}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 502 {object} api.Error
// @Router /v1/accounts/{address}/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	address, ok := h.parseAddress(c)
	if !ok {
		return
	}
	queryParams, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	ctx := c.Request.Context()
	startBlock, endBlock, err := h.blockRange(c, queryParams)
	if err != nil {
		respondError(c, err)
		return
	}

	agg := h.aggregator
	if queryParams.Limit != nil {
		agg = agg.WithMaxTransactions(*queryParams.Limit)
	}
	result, err := agg.Aggregate(ctx, address, startBlock, endBlock)
	if err != nil {
		log.Error().Err(err).Str("address", address.Hex()).Msg("Error aggregating transactions")
		respondError(c, err)
		return
	}

	response := api.QueryResponse{
		Meta: api.Meta{
			ChainId:      h.rpc.GetChainID().Uint64(),
			Address:      address.Hex(),
			StartBlock:   startBlock,
			EndBlock:     endBlock,
			Count:        len(result.Transactions),
			Pages:        result.Pages,
			ReachedLimit: result.ReachedLimit,
			Warning:      result.Warning,
		},
		Data: result.Transactions,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Stream account transactions
// @Description Stream the transaction history of an address as server-sent events, page by page
// @Tags transactions
// @Produce text/event-stream
// @Security BasicAuth
// @Param address path string true "Account address"
// @Param start_block query int false "First block of the range"
// @Param end_block query int false "Last block of the range"
// @Param start_date query string false "Date resolved to the first block of the range"
// @Success 200 {string} string "SSE stream of initial, batch, warning, complete and error frames"
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Router /v1/accounts/{address}/transactions/stream [get]
func (h *Handler) StreamTransactions(c *gin.Context) {
	address, ok := h.parseAddress(c)
	if !ok {
		return
	}
	queryParams, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	ctx := c.Request.Context()
	startBlock, endBlock, err := h.blockRange(c, queryParams)
	if err != nil {
		respondError(c, err)
		return
	}

	sink := make(chan aggregator.Event, 8)
	go h.aggregator.AggregateStream(ctx, address, startBlock, endBlock, sink)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Stream(func(w io.Writer) bool {
		event, open := <-sink
		if !open {
			return false
		}
		c.SSEvent(string(event.Kind), event)
		return true
	})
}

// blockRange settles the query range: explicit blocks win, a start_date is
// resolved via binary search, and missing bounds default to [0, chain head].
func (h *Handler) blockRange(c *gin.Context, params api.QueryParams) (uint64, uint64, error) {
	ctx := c.Request.Context()
	head, err := h.rpc.GetLatestBlockNumber(ctx)
	if err != nil {
		return 0, 0, err
	}
	headNum := head.Uint64()
	metrics.ChainHead.Set(float64(headNum))

	endBlock := headNum
	if params.EndBlock != nil {
		endBlock = *params.EndBlock
	}

	var startBlock uint64
	switch {
	case params.StartBlock != nil && params.StartDate != "":
		return 0, 0, common.NewValidationError("query", "start_block and start_date are mutually exclusive")
	case params.StartBlock != nil:
		startBlock = *params.StartBlock
	case params.StartDate != "":
		resolved, err := h.resolveDate(ctx, params.StartDate, headNum)
		if err != nil {
			return 0, 0, err
		}
		startBlock = resolved
	}

	if startBlock > endBlock {
		return 0, 0, common.NewValidationError("block range", "start block is after end block")
	}
	return startBlock, endBlock, nil
}
