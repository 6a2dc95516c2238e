package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"

	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/common"
)

const DefaultTimeoutMs = 10000

// BalanceResult carries one settled balance read from a concurrent fan-out.
type BalanceResult struct {
	Asset   *common.Asset // nil for the native balance
	Balance *big.Int
	Error   error
}

type IRPCClient interface {
	GetLatestBlockNumber(ctx context.Context) (*big.Int, error)
	GetBlockTimestamp(ctx context.Context, blockNumber *big.Int) (uint64, error)
	GetNativeBalance(ctx context.Context, address gethCommon.Address, blockNumber *big.Int) (*big.Int, error)
	GetTokenBalance(ctx context.Context, contract gethCommon.Address, owner gethCommon.Address, blockNumber *big.Int) (*big.Int, error)
	GetChainID() *big.Int
	GetURL() string
	Close()
}

type Client struct {
	RPCClient *gethRpc.Client
	EthClient *ethclient.Client
	url       string
	chainID   *big.Int
	timeout   time.Duration
}

var erc20ABI = mustParseABI(`[{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"balance","type":"uint256"}],"type":"function"}]`)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}

func Initialize() (IRPCClient, error) {
	rpcUrl := config.Cfg.RPC.URL
	if rpcUrl == "" {
		return nil, fmt.Errorf("RPC_URL environment variable is not set")
	}
	log.Debug().Msg("Initializing RPC")
	rpcClient, dialErr := gethRpc.Dial(rpcUrl)
	if dialErr != nil {
		return nil, dialErr
	}

	ethClient := ethclient.NewClient(rpcClient)

	timeoutMs := config.Cfg.RPC.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = DefaultTimeoutMs
	}

	rpc := &Client{
		RPCClient: rpcClient,
		EthClient: ethClient,
		url:       rpcUrl,
		timeout:   time.Duration(timeoutMs) * time.Millisecond,
	}

	chainIdErr := rpc.setChainID(context.Background())
	if chainIdErr != nil {
		return nil, chainIdErr
	}
	return IRPCClient(rpc), nil
}

func (rpc *Client) GetChainID() *big.Int {
	return rpc.chainID
}

func (rpc *Client) GetURL() string {
	return rpc.url
}

func (rpc *Client) Close() {
	rpc.RPCClient.Close()
	rpc.EthClient.Close()
}

func (rpc *Client) setChainID(ctx context.Context) error {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	chainID, err := rpc.EthClient.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %v", err)
	}
	rpc.chainID = chainID
	return nil
}

func (rpc *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, rpc.timeout)
}

func (rpc *Client) GetLatestBlockNumber(ctx context.Context) (*big.Int, error) {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	blockNumber, err := rpc.EthClient.BlockNumber(ctx)
	if err != nil {
		return nil, classify("eth_blockNumber", err)
	}
	return new(big.Int).SetUint64(blockNumber), nil
}

func (rpc *Client) GetBlockTimestamp(ctx context.Context, blockNumber *big.Int) (uint64, error) {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	header, err := rpc.EthClient.HeaderByNumber(ctx, blockNumber)
	if err != nil {
		return 0, classify("eth_getBlockByNumber", err)
	}
	return header.Time, nil
}

func (rpc *Client) GetNativeBalance(ctx context.Context, address gethCommon.Address, blockNumber *big.Int) (*big.Int, error) {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	balance, err := rpc.EthClient.BalanceAt(ctx, address, blockNumber)
	if err != nil {
		return nil, classify("eth_getBalance", err)
	}
	return balance, nil
}

func (rpc *Client) GetTokenBalance(ctx context.Context, contract gethCommon.Address, owner gethCommon.Address, blockNumber *big.Int) (*big.Int, error) {
	data, err := erc20ABI.Pack("balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf call: %v", err)
	}

	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	raw, err := rpc.EthClient.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, blockNumber)
	if err != nil {
		return nil, classify("eth_call", err)
	}
	if len(raw) == 0 {
		// contract not deployed at that height
		return big.NewInt(0), nil
	}

	unpacked, err := erc20ABI.Unpack("balanceOf", raw)
	if err != nil {
		return nil, &common.RemoteError{Op: "eth_call", Message: fmt.Sprintf("malformed balanceOf return: %v", err)}
	}
	balance, ok := unpacked[0].(*big.Int)
	if !ok {
		return nil, &common.RemoteError{Op: "eth_call", Message: "balanceOf did not return a uint256"}
	}
	return balance, nil
}

// classify maps a geth client error onto the transport/remote split. Timeouts
// and connection failures are retryable by the caller; everything else came
// from the node itself.
func classify(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &common.TransportError{Op: op, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &common.TransportError{Op: op, Err: err}
	}
	return &common.RemoteError{Op: op, Message: err.Error()}
}
