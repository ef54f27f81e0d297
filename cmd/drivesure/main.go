// Command drivesure - терминальный клиент DriveSure Lagos.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, closeApp := newRootCmd()
	err := root.ExecuteContext(ctx)
	if cerr := closeApp(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}

// newRootCmd создает корневую команду со всеми подкомандами
// Вторым значением возвращается функция, закрывающая хранилище после выполнения команды
func newRootCmd() (*cobra.Command, func() error) {
	opts := &options{}
	var a *app

	root := &cobra.Command{
		Use:   "drivesure",
		Short: "DriveSure Lagos - vehicle roadworthiness and compliance",
		Long: `DriveSure Lagos keeps a driver's roadworthiness certificate, documents,
inspections and fines in one place, and lets enforcement officers verify
a driver's QR code at the roadside.

Data is stored on this device (SQLite). Set STORAGE_DRIVER to use a server backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cmd.Context(), opts, cmd.ErrOrStderr())
			return err
		},
	}

	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "interface language: en or yor")
	root.PersistentFlags().BoolVar(&opts.offline, "offline", false, "work without network: no assistant, payments, bookings, traffic or QR")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "path to the local SQLite database")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	// a создается в PersistentPreRunE, поэтому команды получают его через функцию
	get := func() *app { return a }

	root.AddCommand(
		newRegisterCmd(get),
		newLoginCmd(get),
		newLogoutCmd(get),
		newWhoamiCmd(get),
		newDashboardCmd(get),
		newQRCmd(get),
		newDocumentsCmd(get),
		newFinesCmd(get),
		newPayCmd(get),
		newCentersCmd(get),
		newBookCmd(get),
		newTrafficCmd(get),
		newScanCmd(get),
		newAskCmd(get),
	)

	closeApp := func() error {
		if a == nil {
			return nil
		}
		err := a.Close()
		a = nil
		return err
	}

	return root, closeApp
}
