package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

func newSendCmd() *cobra.Command {
	var (
		nonce   uint64
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "send [data]",
		Short: "Send a single-payload packet through the engine to pingpong",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}

			packet := types.Packet{
				Header: types.PacketHeader{
					Source:      types.ClientRef{Address: dummyClientAddress},
					Destination: types.ClientRef{Address: dummyClientAddress},
					Nonce:       nonce,
					Timeout:     uint64(time.Now().Add(timeout).Unix()),
				},
				Payloads: []types.Payload{
					{
						Header: types.PayloadHeader{
							ApplicationSource:      pingpongAddress,
							ApplicationDestination: pingpongAddress,
						},
						Data: []byte(args[0]),
					},
				},
			}

			execCtx := types.ExecContext{Now: sess.Host.Now(), Sender: sess.Host.Caller()}

			dispatches, err := sess.Keeper.SendPacket(sess.Host.Context(), execCtx, packet)
			if err != nil {
				return err
			}
			sess.Host.Enqueue(dispatches...)

			if err := sess.Keeper.ExecuteAll(sess.Host.Context(), sess.Host.DrainQueue()); err != nil {
				return err
			}

			return printJSON(cmd, packet)
		},
	}

	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "packet nonce (0 lets the engine assign the next value)")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Hour, "how far in the future the packet times out")

	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return nil
}
