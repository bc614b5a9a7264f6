package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "walletd-cli",
		Short: "walletd CLI tool",
		Long:  `A command line interface for interacting with the walletd API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the walletd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(walletCmd(), depositCmd(), withdrawCmd(), confirmCmd(), cancelCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
	}

	var userID, currency string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new wallet",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/wallets/", map[string]any{
				"user_id":  userID,
				"currency": currency,
			})
		},
	}
	createCmd.Flags().StringVar(&userID, "user", "", "Owning user ID")
	createCmd.Flags().StringVar(&currency, "currency", "USD", "Wallet currency")
	createCmd.MarkFlagRequired("user")

	balanceCmd := &cobra.Command{
		Use:   "balance <wallet-id>",
		Short: "Show a wallet's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/wallets/"+args[0], nil)
		},
	}

	transactionsCmd := &cobra.Command{
		Use:   "transactions <wallet-id>",
		Short: "List a wallet's transactions",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/wallets/"+args[0]+"/transactions", nil)
		},
	}

	cmd.AddCommand(createCmd, balanceCmd, transactionsCmd)

	return cmd
}

func depositCmd() *cobra.Command {
	return moveFundsCmd("deposit", "Create a pending deposit")
}

func withdrawCmd() *cobra.Command {
	return moveFundsCmd("withdraw", "Create a pending withdrawal")
}

func moveFundsCmd(op, short string) *cobra.Command {
	var feePercent float64

	cmd := &cobra.Command{
		Use:   op + " <wallet-id> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fmt.Printf("Invalid amount %q: %v\n", args[1], err)
				os.Exit(1)
			}

			body := map[string]any{"amount": amount}
			if cmd.Flags().Changed("fee-percent") {
				body["fee_percent"] = feePercent
			}

			doRequest(http.MethodPost, "/api/v1/wallets/"+args[0]+"/"+op, body)
		},
	}
	cmd.Flags().Float64Var(&feePercent, "fee-percent", 0, "Fee percentage (server default when omitted)")

	return cmd
}

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <transaction-id>",
		Short: "Confirm a pending transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/transactions/"+args[0]+"/confirm", nil)
		},
	}
}

func cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <transaction-id>",
		Short: "Cancel a pending transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/transactions/"+args[0]+"/cancel", nil)
		},
	}
}

func doRequest(method, path string, body map[string]any) {
	client := &http.Client{Timeout: timeout}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBody, "", "  "); err != nil {
		pretty.Write(respBody)
	}

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\n%s\n", resp.StatusCode, pretty.String())
		os.Exit(1)
	}

	fmt.Println(pretty.String())
}
