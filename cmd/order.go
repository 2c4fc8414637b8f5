package main

import (
	"context"
	"errors"
	"fmt"
	"library/internal/config"
	"library/internal/lending"
	"library/pkg/domain"
	"library/pkg/serrors"

	"github.com/spf13/cobra"
)

// orderFailedExitCode is the exit status when the lending rules reject an order.
const orderFailedExitCode exitCode = 2

type orderFn func(ctx context.Context, userID domain.UserID, itemIDs []domain.ItemID) error

// orderCommand builds a subcommand that runs one borrow or return order
// directly against the database.
func orderCommand(cfg *config.Config, use, short string, pick func(l lending.Lending) orderFn) *cobra.Command {
	var (
		userID  int64
		itemIDs []int64
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			ids := make([]domain.ItemID, len(itemIDs))
			for i, id := range itemIDs {
				ids[i] = domain.ItemID(id)
			}

			err := pick(getLending(ctx, cfg, strg))(ctx, domain.UserID(userID), ids)

			return reportOrder(cmd, err)
		},
	}

	cmd.Flags().Int64VarP(&userID, "user", "u", 0, "User ID")
	cmd.Flags().Int64SliceVarP(&itemIDs, "items", "i", nil, "Comma separated item IDs")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// reportOrder prints the outcome of an order. Rule violations are printed as
// "CODE: message" and exit with orderFailedExitCode.
func reportOrder(cmd *cobra.Command, err error) error {
	if err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")

		return nil
	}

	if errors.Is(err, lending.ErrOrderFailed) {
		msg := err.Error()
		var semantic *serrors.Error
		if errors.As(err, &semantic) && semantic.Message() != "" {
			msg = semantic.Message()
		}
		cmd.PrintErrf("%s: %s\n", lending.Reason(err), msg)

		return orderFailedExitCode
	}

	return err
}

func borrowCommand(cfg *config.Config) *cobra.Command {
	return orderCommand(cfg, "borrow", "Borrows items for a user", func(l lending.Lending) orderFn {
		return l.BorrowItems
	})
}

func returnCommand(cfg *config.Config) *cobra.Command {
	return orderCommand(cfg, "return", "Returns items of a user", func(l lending.Lending) orderFn {
		return l.ReturnItems
	})
}
