package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

func newTimeoutCmd() *cobra.Command {
	var (
		nonce       uint64
		proofHeight uint64
	)

	cmd := &cobra.Command{
		Use:   "timeout [data]",
		Short: "Time out a single-payload packet that already expired",
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
					Timeout:     uint64(time.Now().Add(-time.Minute).Unix()),
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

			execCtx := types.ExecContext{Now: sess.Host.Now(), Sender: "operator"}

			dispatches, err := sess.Keeper.TimeoutPacket(sess.Host.Context(), execCtx, packet, proofHeight, []byte("proof"))
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

	cmd.Flags().Uint64Var(&nonce, "nonce", 1, "nonce of the packet to time out")
	cmd.Flags().Uint64Var(&proofHeight, "proof-height", 1, "proof height to verify non-membership against")

	return cmd
}
