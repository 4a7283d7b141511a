package main

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/spf13/cobra"
)

func newClientCommand() *cobra.Command {
	client := &cobra.Command{
		Use:   "client",
		Short: "Manage API clients",
	}
	client.AddCommand(newClientCreateCommand())
	return client
}

func newClientCreateCommand() *cobra.Command {
	var (
		id     string
		name   string
		role   string
		secret string
		scopes string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API client and print its secret",
		Long:  "Create an API client for the client_credentials grant. The secret is printed once and cannot be recovered.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}

			clientService := services.NewClientService(db)
			client := models.APIClient{ID: id, Name: name, Role: role, Scopes: scopes}

			if secret == "" {
				var created models.APIClient
				created, secret, err = clientService.CreateClient(cmd.Context(), client)
				client = created
			} else {
				client, err = clientService.CreateClientWithSecret(cmd.Context(), client, secret)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Client ID: %s\n", client.ID)
			fmt.Fprintf(out, "Client Secret: %s\n", secret)
			fmt.Fprintf(out, "Role: %s\n", client.Role)
			fmt.Fprintln(out, "\nRequest a token with:")
			fmt.Fprintf(out, "  curl -X POST http://localhost:8080/oauth/token -d grant_type=client_credentials -d client_id=%s -d client_secret=%s\n",
				client.ID, secret)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "Client role (admin or user)")
	cmd.Flags().StringVar(&id, "id", "", "Client ID (generated when empty)")
	cmd.Flags().StringVar(&secret, "secret", "", "Client secret (generated when empty)")
	cmd.Flags().StringVar(&scopes, "scopes", "read write", "Space separated scopes")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
