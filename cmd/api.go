package cmd

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/docs"
	"github.com/chainlens/explorer/internal/aggregator"
	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/handlers"
	"github.com/chainlens/explorer/internal/middleware"
	"github.com/chainlens/explorer/internal/portfolio"
	"github.com/chainlens/explorer/internal/prices"
	"github.com/chainlens/explorer/internal/resolver"
	"github.com/chainlens/explorer/internal/rpc"
	"github.com/chainlens/explorer/internal/scanner"
)

var (
	apiCmd = &cobra.Command{
		Use:   "api",
		Short: "Serve the account activity API",
		Long:  "Serve transaction history, streaming aggregation, and historical balance snapshots over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

// @title Chainlens Explorer
// @version v0.1.0
// @description API for querying account transaction history and historical balance snapshots
// @BasePath /
// @Security BasicAuth
// @securityDefinitions.basic BasicAuth
func RunApi(cmd *cobra.Command, args []string) {
	docs.SwaggerInfo.Host = config.Cfg.API.Host

	rpcClient, err := rpc.Initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RPC client")
	}
	defer rpcClient.Close()
	log.Info().
		Str("url", rpcClient.GetURL()).
		Str("chain_id", rpcClient.GetChainID().String()).
		Msg("Connected to RPC")

	assets, err := common.AssetsFromConfig(config.Cfg.Assets)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid asset catalog")
	}

	symbols := make([]string, 0, len(assets)+1)
	nativeSymbol := config.Cfg.Chain.NativeSymbol
	if nativeSymbol == "" {
		nativeSymbol = "ETH"
	}
	symbols = append(symbols, nativeSymbol)
	for _, asset := range assets {
		symbols = append(symbols, asset.Symbol)
	}

	priceCache := prices.NewCache(
		prices.NewFeedClient(),
		symbols,
		time.Duration(config.Cfg.Prices.FreshnessSec)*time.Second,
	)

	handler := handlers.NewHandler(
		rpcClient,
		aggregator.NewAggregator(scanner.NewClient()),
		resolver.NewResolver(rpcClient),
		portfolio.NewValuator(rpcClient, priceCache, assets),
	)

	r := newRouter(handler)

	host := config.Cfg.API.Host
	if host == "" {
		host = ":3000"
	}
	if err := r.Run(host); err != nil {
		log.Fatal().Err(err).Msg("API server stopped")
	}
}

func newRouter(handler *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	// Add Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Add Swagger JSON endpoint
	r.GET("/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			log.Error().Err(err).Msg("Failed to read Swagger documentation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provide Swagger documentation"})
			return
		}
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, doc)
	})

	root := r.Group("/v1")
	{
		root.Use(middleware.Authorization)
		root.GET("/accounts/:address/transactions", handler.GetTransactions)
		root.GET("/accounts/:address/transactions/stream", handler.StreamTransactions)
		root.GET("/accounts/:address/balance", handler.GetBalance)
		root.GET("/blocks/resolve", handler.ResolveBlock)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
