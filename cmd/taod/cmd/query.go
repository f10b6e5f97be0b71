package cmd

import (
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query commands against a fresh in-memory session",
	}

	cmd.AddCommand(newQueryParamsCmd(), newQueryRegistryCmd(), newQueryValueCmd())

	return cmd
}

func newQueryParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the default engine parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			params, err := sess.Keeper.GetParams(sess.Host.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, params)
		},
	}
}

func newQueryRegistryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "List every address registered with this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			owned, err := sess.Keeper.OwnedContracts(sess.Host.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, owned)
		},
	}
}

func newQueryValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value",
		Short: "Print pingpong's current stored value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			value, err := sess.PingPong.Value.Get(sess.Host.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, value)
		},
	}
}
