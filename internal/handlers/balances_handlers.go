package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chainlens/explorer/api"
	"github.com/chainlens/explorer/internal/common"
)

// @Summary Get account balance
// @Description Retrieve the valued portfolio snapshot of an address at a block, a date, or the current chain head
// @Tags accounts
// @Produce json
// @Security BasicAuth
// @Param address path string true "Account address"
// @Param block query int false "Block number to value at"
// @Param date query string false "Date to value at (resolved to a block)"
// @Success 200 {object} api.QueryResponse{data=portfolio.Snapshot}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 502 {object} api.Error
// @Router /v1/accounts/{address}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	address, ok := h.parseAddress(c)
	if !ok {
		return
	}
	queryParams, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	if queryParams.Block != nil && queryParams.Date != "" {
		api.BadRequestErrorHandler(c, common.NewValidationError("query", "block and date are mutually exclusive"))
		return
	}

	ctx := c.Request.Context()

	var blockNumber uint64
	switch {
	case queryParams.Block != nil:
		blockNumber = *queryParams.Block
	default:
		head, err := h.rpc.GetLatestBlockNumber(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		blockNumber = head.Uint64()
		if queryParams.Date != "" {
			blockNumber, err = h.resolveDate(ctx, queryParams.Date, blockNumber)
			if err != nil {
				respondError(c, err)
				return
			}
		}
	}

	snapshot, err := h.valuator.ValueAt(ctx, address, blockNumber)
	if err != nil {
		log.Error().Err(err).Str("address", address.Hex()).Msg("Error valuing portfolio")
		respondError(c, err)
		return
	}

	response := api.QueryResponse{
		Meta: api.Meta{
			ChainId: h.rpc.GetChainID().Uint64(),
			Address: address.Hex(),
			Count:   len(snapshot.Assets),
		},
		Data: snapshot,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Resolve a date to a block
// @Description Find the first block whose timestamp is at or after the given date
// @Tags blocks
// @Produce json
// @Security BasicAuth
// @Param date query string true "Date to resolve"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 502 {object} api.Error
// @Router /v1/blocks/resolve [get]
func (h *Handler) ResolveBlock(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	if queryParams.Date == "" {
		api.BadRequestErrorHandler(c, common.NewValidationError("date", "required"))
		return
	}

	ctx := c.Request.Context()
	head, err := h.rpc.GetLatestBlockNumber(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	blockNumber, err := h.resolveDate(ctx, queryParams.Date, head.Uint64())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chain_id":     h.rpc.GetChainID().Uint64(),
		"date":         queryParams.Date,
		"block_number": blockNumber,
	})
}
