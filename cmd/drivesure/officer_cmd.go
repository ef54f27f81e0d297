package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/frontandrew/drivesure/internal/usecase/verification"
	"github.com/spf13/cobra"
)

func newScanCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [qr-text]",
		Short: "Verify a driver's QR code (officers only)",
		Long: `Verifies the decoded text of a driver's QR code.

Pass the text as an argument, or pipe one code per line on stdin
(e.g. from a barcode scanner) to verify several drivers in a row.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			officer, err := a.currentOfficer(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title(out, a.t("officerPortal"))

			if len(args) == 1 {
				return scanOne(cmd, a, officer.ID, args[0])
			}

			fmt.Fprintln(out, a.t("scanPrompt"))
			lines := bufio.NewScanner(cmd.InOrStdin())
			failed := 0
			for lines.Scan() {
				text := strings.TrimSpace(lines.Text())
				if text == "" {
					continue
				}
				if err := scanOne(cmd, a, officer.ID, text); err != nil {
					if !errors.Is(err, domain.ErrInvalidQRCode) {
						return err
					}
					failed++
				}
				fmt.Fprintln(out, labelStyle.Render(a.t("scanAnother")))
			}
			if err := lines.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of the scanned codes were invalid", failed)
			}
			return nil
		},
	}
}

// scanOne проводит один цикл idle -> scanning -> success | error
func scanOne(cmd *cobra.Command, a *app, officerID, text string) error {
	out := cmd.OutOrStdout()

	scanner := verification.NewScanner()
	scanner.Start()
	fmt.Fprintln(out, a.t("scanning"))

	payload, err := scanner.Complete(text)
	if err != nil {
		fmt.Fprintf(out, "  %s\n", errorStyle.Render(a.t("invalidQrCode")))
		return err
	}

	// Сервис логирует проверку и имитирует задержку ответа
	if _, err := a.verification.Verify(cmd.Context(), officerID, text); err != nil {
		return err
	}

	title(out, a.t("verificationResult"))
	fmt.Fprintf(out, "  %s\n", badgeLabel(payload.Status, a.t("certificateValid")))
	field(out, a.t("name"), payload.Name)
	field(out, "Driver ID", payload.DriverID)
	field(out, a.t("expires"), payload.ExpiryDate)
	fmt.Fprintln(out)
	title(out, a.t("vehicleDetails"))
	field(out, a.t("plateNumber"), payload.PlateNumber)
	field(out, "Vehicle", payload.Vehicle)
	return nil
}
