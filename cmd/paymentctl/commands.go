package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"ticket_checkout/internal/domain/gatewayresponse"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/infrastructure/config"
	"ticket_checkout/internal/infrastructure/payments"
	"ticket_checkout/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

func normalizeCmd() *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "normalize [phone]",
		Short: "Show how a phone number is normalized for payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := mobilemoney.NewNormalizer(country)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "normalized: %s\n", n.NormalizePhone(args[0]))
			fmt.Fprintf(out, "display:    %s\n", n.FormatPhoneForDisplay(args[0]))
			fmt.Fprintf(out, "account:    %s\n", n.ToGatewayAccountNumber(args[0]))
			if _, err := n.ValidatePaymentPhone(args[0]); err != nil {
				fmt.Fprintf(out, "payable:    no (%v)\n", err)
			} else {
				fmt.Fprintln(out, "payable:    yes")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&country, "country", "c", mobilemoney.DefaultCountryCode, "country dialing code")
	return cmd
}

func interpretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interpret [file|-]",
		Short: "Classify a saved gateway response",
		Long: `Reads a gateway JSON response from a file, or from stdin when the
argument is "-" or missing, and prints the verdict, the reason and the
candidate transaction references.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			raw, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("read response: %w", err)
			}
			printInterpretation(cmd.OutOrStdout(), raw, "")
			return nil
		},
	}
	return cmd
}

func verifyCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "verify [reference]",
		Short: "Ask the gateway for the status of a transaction reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			gw, err := gatewayFromConfig(cfg.Gateway)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			raw, err := gw.Verify(ctx, args[0])
			if err != nil {
				return fmt.Errorf("verify %s: %w", args[0], err)
			}
			printInterpretation(cmd.OutOrStdout(), raw, args[0])
			return nil
		},
	}
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 30*time.Second, "overall timeout")
	return cmd
}

func gatewayFromConfig(cfg config.GatewayConfig) (interfaces.IPaymentGateway, error) {
	if cfg.Mock {
		return payments.NewMockGateway(), nil
	}
	return payments.NewMobileMoneyGateway(cfg.BaseURL, cfg.Timeout)
}

func printInterpretation(out io.Writer, raw []byte, fallbackRef string) {
	doc := gatewayresponse.Parse(raw)
	interp := gatewayresponse.InterpretDocument(doc)

	fmt.Fprintf(out, "verdict:    %s\n", interp.Verdict)
	if interp.Reason != "" {
		fmt.Fprintf(out, "reason:     %s\n", interp.Reason)
	}
	if refs := gatewayresponse.CandidateReferences(doc, fallbackRef); len(refs) > 0 && refs[0] != "" {
		fmt.Fprintf(out, "references: %v\n", refs)
	}
	if doc.IsObject() {
		var pretty any
		if err := json.Unmarshal(raw, &pretty); err == nil {
			b, _ := json.MarshalIndent(pretty, "", "  ")
			fmt.Fprintf(out, "payload:\n%s\n", b)
		}
	}
}
