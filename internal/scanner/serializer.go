package scanner

import (
	"strconv"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/chainlens/explorer/internal/common"
)

// Normalize converts one raw indexed record into the canonical transaction
// shape. Value and gas fields stay on unscaled integers; display scaling is
// applied only to the presentation fields.
func Normalize(raw RawTransaction, nativeDecimals int) (common.TransactionRecord, error) {
	blockNumber, err := strconv.ParseUint(raw.BlockNumber, 10, 64)
	if err != nil {
		return common.TransactionRecord{}, common.NewValidationError("blockNumber", "not an unsigned integer: "+raw.BlockNumber)
	}
	timestamp, err := strconv.ParseUint(raw.TimeStamp, 10, 64)
	if err != nil {
		return common.TransactionRecord{}, common.NewValidationError("timeStamp", "not an unsigned integer: "+raw.TimeStamp)
	}
	gasUsed, err := strconv.ParseUint(raw.GasUsed, 10, 64)
	if err != nil {
		return common.TransactionRecord{}, common.NewValidationError("gasUsed", "not an unsigned integer: "+raw.GasUsed)
	}

	value, err := common.ParseUnsigned(raw.Value)
	if err != nil {
		return common.TransactionRecord{}, err
	}
	gasPrice, err := common.ParseUnsigned(raw.GasPrice)
	if err != nil {
		return common.TransactionRecord{}, err
	}

	fee := new(uint256.Int)
	if _, overflow := fee.MulOverflow(gasPrice, uint256.NewInt(gasUsed)); overflow {
		return common.TransactionRecord{}, common.NewValidationError("fee", "gas price x gas used overflows 256 bits")
	}

	var toAddress *string
	if raw.To != "" {
		checksummed := gethCommon.HexToAddress(raw.To).Hex()
		toAddress = &checksummed
	}

	return common.TransactionRecord{
		Hash:           raw.Hash,
		BlockNumber:    blockNumber,
		BlockTimestamp: timestamp,
		FromAddress:    gethCommon.HexToAddress(raw.From).Hex(),
		ToAddress:      toAddress,
		Value:          value.Dec(),
		ValueDisplay:   common.FormatUnits(value, nativeDecimals, common.AmountDisplayDecimals),
		GasPrice:       gasPrice.Dec(),
		GasUsed:        gasUsed,
		Fee:            common.FormatUnits(fee, nativeDecimals, common.AmountDisplayDecimals),
		Failed:         raw.IsError == "1",
	}, nil
}
