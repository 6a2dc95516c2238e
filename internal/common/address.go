package common

import (
	gethCommon "github.com/ethereum/go-ethereum/common"
)

// Address is a validated, checksummed account identifier. Construct through
// ParseAddress; the zero value is not a valid address.
type Address struct {
	addr gethCommon.Address
}

func ParseAddress(s string) (Address, error) {
	if !gethCommon.IsHexAddress(s) {
		return Address{}, NewValidationError("address", "must be a 20-byte hex string with 0x prefix")
	}
	return Address{addr: gethCommon.HexToAddress(s)}, nil
}

// Hex returns the EIP-55 checksummed form.
func (a Address) Hex() string {
	return a.addr.Hex()
}

func (a Address) Geth() gethCommon.Address {
	return a.addr
}
