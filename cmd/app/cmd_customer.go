package main

import (
	"context"
	"fmt"
	"hotelier/internal/domains/customer/model/dto"

	"github.com/spf13/cobra"
)

func (a *app) customerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage customer profiles",
	}

	cmd.AddCommand(
		a.customerCreateCmd(),
		a.customerGetCmd(),
		a.customerListCmd(),
		a.customerUpdateCmd(),
		a.customerDeleteCmd(),
	)

	return cmd
}

func (a *app) customerCreateCmd() *cobra.Command {
	var req dto.CreateCustomerRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Customer.Create(ctx, req)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&req.Email, "email", "", "customer email")

	return cmd
}

func (a *app) customerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <customer-id>",
		Short: "Show a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Customer.Get(ctx, id)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}
}

func (a *app) customerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScope(cmd, func(ctx context.Context) error {
				res, err := a.services.Customer.GetAll(ctx)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}
}

func (a *app) customerUpdateCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "update <customer-id>",
		Short: "Change the fields given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req dto.UpdateCustomerRequest

			if cmd.Flags().Changed("name") {
				req.Name = &name
			}

			if cmd.Flags().Changed("email") {
				req.Email = &email
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				if err := a.services.Customer.Update(ctx, req, id); err != nil {
					return err
				}

				res, err := a.services.Customer.Get(ctx, id)
				if err != nil {
					return err
				}

				return a.render(res)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new customer name")
	cmd.Flags().StringVar(&email, "email", "", "new customer email")

	return cmd
}

func (a *app) customerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <customer-id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withScope(cmd, func(ctx context.Context) error {
				if err := a.services.Customer.Delete(ctx, id); err != nil {
					return err
				}

				return a.render(statusResponse{Message: fmt.Sprintf("customer %d deleted", id)})
			})
		},
	}
}
