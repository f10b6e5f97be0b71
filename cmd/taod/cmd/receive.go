package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rnbguy/ibc-eureka-tao/x/tao/types"
)

func newReceiveCmd() *cobra.Command {
	var (
		nonce       uint64
		proofHeight uint64
	)

	cmd := &cobra.Command{
		Use:   "receive [data]",
		Short: "Receive a single-payload packet against the dummy light client",
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
					Timeout:     uint64(time.Now().Add(time.Hour).Unix()),
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

			dispatches, err := sess.Keeper.ReceivePacket(sess.Host.Context(), execCtx, packet, proofHeight, []byte("proof"))
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

	cmd.Flags().Uint64Var(&nonce, "nonce", 1, "expected received nonce for this connection")
	cmd.Flags().Uint64Var(&proofHeight, "proof-height", 1, "proof height to verify membership against")

	return cmd
}
