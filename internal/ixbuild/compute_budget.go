package ixbuild

import (
	"encoding/binary"

	"github.com/LerianStudio/launchplan/internal/rpcfacade"
	"github.com/LerianStudio/launchplan/internal/solana"
)

// ComputeBudgetProgram is the well-known compute budget program address.
var ComputeBudgetProgram = solana.ComputeBudgetProgram

const (
	setComputeUnitLimitDiscriminator = 0x02
	setComputeUnitPriceDiscriminator = 0x03
)

// PrependComputeBudget prepends SetComputeUnitLimit (if cuLimit > 0) and
// SetComputeUnitPrice (if cuPriceMicro > 0) instructions ahead of ixs, per
// spec.md §4.5.
func PrependComputeBudget(ixs []rpcfacade.Instruction, cuLimit, cuPriceMicro int64) []rpcfacade.Instruction {
	var prefix []rpcfacade.Instruction

	if cuLimit > 0 {
		data := make([]byte, 5)
		data[0] = setComputeUnitLimitDiscriminator
		binary.LittleEndian.PutUint32(data[1:], uint32(cuLimit))
		prefix = append(prefix, rpcfacade.Instruction{ProgramID: ComputeBudgetProgram, Data: data})
	}

	if cuPriceMicro > 0 {
		data := make([]byte, 9)
		data[0] = setComputeUnitPriceDiscriminator
		binary.LittleEndian.PutUint64(data[1:], uint64(cuPriceMicro))
		prefix = append(prefix, rpcfacade.Instruction{ProgramID: ComputeBudgetProgram, Data: data})
	}

	return append(prefix, ixs...)
}
