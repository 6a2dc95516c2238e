package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chainlens/explorer/api"
	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/aggregator"
	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/portfolio"
	"github.com/chainlens/explorer/internal/resolver"
	"github.com/chainlens/explorer/internal/rpc"
)

// Handler carries the injected core components; no package-level state so
// tests can assemble their own instances.
type Handler struct {
	rpc        rpc.IRPCClient
	aggregator *aggregator.Aggregator
	resolver   *resolver.Resolver
	valuator   *portfolio.Valuator
}

func NewHandler(rpcClient rpc.IRPCClient, agg *aggregator.Aggregator, res *resolver.Resolver, val *portfolio.Valuator) *Handler {
	return &Handler{
		rpc:        rpcClient,
		aggregator: agg,
		resolver:   res,
		valuator:   val,
	}
}

func (h *Handler) parseAddress(c *gin.Context) (common.Address, bool) {
	address, err := common.ParseAddress(c.Param("address"))
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return common.Address{}, false
	}
	return address, true
}

// resolveDate validates the date against [genesis, now] and binary-searches
// for its block.
func (h *Handler) resolveDate(ctx context.Context, dateStr string, chainHead uint64) (uint64, error) {
	date, err := api.ParseDate(dateStr)
	if err != nil {
		return 0, common.NewValidationError("date", err.Error())
	}
	unix := date.Unix()
	if unix < 0 {
		// pre-1970 dates would wrap to a huge uint64 and be misreported as future
		return 0, common.NewValidationError("date", "before chain genesis")
	}
	target := uint64(unix)
	if err := resolver.ValidateTarget(target, config.Cfg.Chain.GenesisTimestamp, uint64(time.Now().Unix())); err != nil {
		return 0, err
	}
	return h.resolver.ResolveTimestamp(ctx, target, chainHead)
}

// respondError maps the error taxonomy onto status codes: validation 4xx,
// remote/transport 502, anything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case common.IsValidationError(err):
		api.BadRequestErrorHandler(c, err)
	case common.IsTransportError(err):
		api.BadGatewayErrorHandler(c, err)
	default:
		var re *common.RemoteError
		if errors.As(err, &re) {
			api.BadGatewayErrorHandler(c, err)
			return
		}
		api.InternalErrorHandler(c)
	}
}
