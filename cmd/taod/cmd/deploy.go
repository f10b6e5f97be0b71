package cmd

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

func newDeployCmd() *cobra.Command {
	var (
		codeID int64
		access string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Allocate a reply ID for an instantiate-then-register deploy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}

			accessType, err := parseAccessType(access)
			if err != nil {
				return err
			}

			if sdkmath.NewInt(codeID).IsNegative() {
				return fmt.Errorf("code id must not be negative, got %d", codeID)
			}

			replyID, err := sess.Keeper.Deploy(sess.Host.Context(), uint64(codeID))
			if err != nil {
				return err
			}

			runID := sess.Host.NewRunID()
			fmt.Fprintf(cmd.OutOrStdout(), "allocated reply id %d for code id %d (access=%s, run=%s)\n",
				replyID, codeID, accessType, runID)

			newContract := types.Address(fmt.Sprintf("contract-%s", uuid.NewString()))
			if err := sess.Keeper.HandleReply(sess.Host.Context(), replyID, newContract); err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{
				"reply_id": replyID,
				"address":  newContract,
			})
		},
	}

	cmd.Flags().Int64Var(&codeID, "code-id", 1, "uploaded wasm code ID to instantiate")
	cmd.Flags().StringVar(&access, "access", wasmtypes.AccessTypeEverybody.String(), "instantiate permission for the deployed code")

	return cmd
}

func parseAccessType(s string) (wasmtypes.AccessType, error) {
	switch s {
	case wasmtypes.AccessTypeEverybody.String():
		return wasmtypes.AccessTypeEverybody, nil
	case wasmtypes.AccessTypeNobody.String():
		return wasmtypes.AccessTypeNobody, nil
	case wasmtypes.AccessTypeOnlyAddress.String():
		return wasmtypes.AccessTypeOnlyAddress, nil
	case wasmtypes.AccessTypeAnyOfAddresses.String():
		return wasmtypes.AccessTypeAnyOfAddresses, nil
	default:
		return wasmtypes.AccessTypeUnspecified, fmt.Errorf("invalid access type %q", s)
	}
}
