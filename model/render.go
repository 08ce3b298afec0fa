package model

import (
	"fmt"
	"strings"
)

// String renders the transaction for humans. The layout is for diagnostics only and is not parsed back.
func (tx *BitcoinTransaction) String() string {
	var sb strings.Builder

	sb.WriteString("Bitcoin Transaction:\n")
	fmt.Fprintf(&sb, "  Version: %d\n", tx.Version)
	fmt.Fprintf(&sb, "  Inputs: %d\n", len(tx.Inputs))

	for i, input := range tx.Inputs {
		if input == nil {
			input = &TransactionInput{}
		}

		var previousOutput OutPoint
		if input.PreviousOutput != nil {
			previousOutput = *input.PreviousOutput
		}

		fmt.Fprintf(&sb, "    Input %d:\n", i)
		fmt.Fprintf(&sb, "      Previous Output Txid: %s\n", previousOutput.TxID)
		fmt.Fprintf(&sb, "      Previous Output Vout: %d\n", previousOutput.Vout)
		fmt.Fprintf(&sb, "      Script Sig Length: %d\n", input.ScriptSig.Len())
		fmt.Fprintf(&sb, "      Script Sig: %s\n", input.ScriptSig)
		fmt.Fprintf(&sb, "      Sequence: 0x%08x\n", input.Sequence)
	}

	fmt.Fprintf(&sb, "  Lock Time: %d", tx.LockTime)

	return sb.String()
}
